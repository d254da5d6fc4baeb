// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-vmind/internal/app"
	"github.com/MKhiriev/go-vmind/internal/utils"
	"github.com/MKhiriev/go-vmind/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches but the method does not. This handler
// answers 404 instead, so callers using an unsupported method cannot tell
// the route exists. A request whose method does match (chi may still call
// the handler for a sibling subrouter) is served by the router as usual.
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgNotFound}, http.StatusNotFound)
	}
}
