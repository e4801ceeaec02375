// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware contains the HTTP cross-cutting pieces: request logging,
JSON body/response helpers, the CORS allow-list, and the session guard.

# Session Guard

RequireSession wraps the authenticated routes. It resolves the listly_session
cookie against the injected session store, rejects missing or expired
sessions with 401, and makes the identity available downstream:

	mux.HandleFunc("GET /get-list", middleware.RequireSession(sessions, h.GetLists))

	identity, _ := middleware.IdentityFrom(r.Context())

# Response Convention

One convention everywhere: the HTTP status carries the error class, and the
body always carries a success flag: ErrorResponse for failures, a typed
payload for successes. FailWith maps the models error kinds to status codes.

# CORS

Cross-origin requests are credentialed (cookies), so the allowed origins are
an explicit list from configuration. Unlisted origins receive no CORS
headers; preflights are answered with 204.
*/
package middleware
