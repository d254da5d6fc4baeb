// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("localhost:8080", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}
	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("localhost:8080", 0)
	client2 := NewHTTPClient("localhost:8080", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected different *resty.Client instances")
	}
}

func TestNewHTTPClient_BaseURLAndTimeout(t *testing.T) {
	client := NewHTTPClient("localhost:8080/", 3*time.Second)

	if client.BaseURL != "http://localhost:8080" {
		t.Errorf("unexpected base URL %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", client.GetClient().Timeout)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"localhost:8080":         "http://localhost:8080",
		"https://api.vmind.dev/": "https://api.vmind.dev",
		"http://127.0.0.1:9000":  "http://127.0.0.1:9000",
	}

	for in, want := range tests {
		if got := normalizeBaseURL(in); got != want {
			t.Errorf("normalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}
