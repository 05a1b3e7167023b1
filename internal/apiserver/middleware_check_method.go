// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiserver

import (
	"net/http"

	"github.com/MKhiriev/go-pass-client/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A request
// whose path matches a route but whose method is not registered for it gets
// 404 instead of chi's default 405.
//
// Only exact pattern matches are considered; parameterised segments are not
// expanded, so such routes fall through to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			notFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
