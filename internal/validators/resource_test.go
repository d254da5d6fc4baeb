// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-vmind/models"
	"github.com/stretchr/testify/assert"
)

func TestResourceValidator_Resource(t *testing.T) {
	valid := models.Resource{UserID: "u", Title: "Python crash course", Type: "video", Link: "https://youtu.be/abc", DurationMinutes: ptr(45)}

	tests := []struct {
		name   string
		mutate func(r *models.Resource)
		want   error
	}{
		{name: "valid", mutate: func(r *models.Resource) {}},
		{name: "no duration", mutate: func(r *models.Resource) { r.DurationMinutes = nil }},
		{name: "zero duration", mutate: func(r *models.Resource) { r.DurationMinutes = ptr(0) }},
		{name: "missing title", mutate: func(r *models.Resource) { r.Title = "" }, want: ErrEmptyTitle},
		{name: "missing type", mutate: func(r *models.Resource) { r.Type = "" }, want: ErrEmptyResourceType},
		{name: "missing link", mutate: func(r *models.Resource) { r.Link = "" }, want: ErrInvalidLink},
		{name: "relative link", mutate: func(r *models.Resource) { r.Link = "/watch?v=1" }, want: ErrInvalidLink},
		{name: "non-http link", mutate: func(r *models.Resource) { r.Link = "ftp://files.example.com/a" }, want: ErrInvalidLink},
		{name: "negative duration", mutate: func(r *models.Resource) { r.DurationMinutes = ptr(-5) }, want: ErrInvalidDuration},
	}

	v := NewResourceValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := valid
			tt.mutate(&res)

			err := v.Validate(context.Background(), res)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResourceValidator_ResourceUpdate(t *testing.T) {
	v := NewResourceValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.ResourceUpdate{ResourceID: 3, UserID: "u", Link: ptr("http://example.com")}))
	assert.ErrorIs(t, v.Validate(ctx, models.ResourceUpdate{ResourceID: 3, UserID: "u"}), ErrNoFieldsToUpdate)
	assert.ErrorIs(t, v.Validate(ctx, models.ResourceUpdate{ResourceID: 3, UserID: "u", Link: ptr("nope")}), ErrInvalidLink)
	assert.ErrorIs(t, v.Validate(ctx, models.ResourceUpdate{ResourceID: 3, UserID: "u", DurationMinutes: ptr(-1)}), ErrInvalidDuration)
	assert.ErrorIs(t, v.Validate(ctx, models.ResourceUpdate{UserID: "u", Title: ptr("x")}), ErrInvalidID)
}
