// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token generation.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword(plaintext)
	ok := auth.CheckPassword(plaintext, hash)

The plaintext is consumed and discarded; only the hash is stored, and the
hash never leaves the server.

# Session Tokens

Session tokens are random 24-byte (192-bit) secrets:

	token, err := auth.NewSessionToken()

Tokens are URL-safe base64 encoded without padding and carried in an
HttpOnly cookie. They are opaque: all session state lives server-side in
the session store, keyed by token.
*/
package auth
