// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires routes to handlers using Go 1.22+ method patterns.

Auth routes are open (they populate the session gate); every list and item
route is wrapped in the session guard and request logging. The whole mux is
wrapped in the CORS allow-list so credentialed browser clients on approved
origins can call the API.
*/
package router
