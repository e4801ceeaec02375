// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package api is the HTTP client for the Listly server: one typed method per
endpoint, a cookie jar carrying the session, and a bounded timeout on every
call.

Failures keep their classification across the wire: server error responses
are rebuilt into the models error kinds from the status code, and
network-level failures (unreachable, timed out) come back wrapped in
models.ErrTransient so callers can distinguish "retry later" from "the
server said no".
*/
package api
