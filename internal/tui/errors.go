// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-client/internal/app"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/view"
)

// errorMessage returns the overlay text for err. Form validation errors are
// local; everything else goes through service.UserMessage with fallback.
func errorMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, view.ErrTitleRequired), errors.Is(err, view.ErrSecretRequired):
		return app.MsgTitleAndPasswordRequired
	case errors.Is(err, view.ErrInvalidWebsite):
		return app.MsgInvalidWebsite
	case errors.Is(err, view.ErrInvalidCategory):
		return app.MsgInvalidCategory
	}
	return service.UserMessage(err, fallback)
}
