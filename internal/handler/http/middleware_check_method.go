// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Kosyrev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered via
// [chi.Mux.MethodNotAllowed]. Instead of chi's default 405, a request whose
// path matches a registered route but whose method is not handled receives
// a 404, so that route existence is not leaked to probing clients.
//
// The lookup compares route patterns against the raw request path; only
// exact pattern matches are considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
