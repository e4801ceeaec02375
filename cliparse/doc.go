// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags, environment
variables, and an optional .env file, in that order of precedence.

Settings:

  - PORT (-p): listen port (default 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - DATABASE_URL (-d): connection string, or sqlite file path (default listly.db)
  - ALLOWED_ORIGINS (-origins): comma-separated CORS allow-list
  - SESSION_TTL (-session-ttl): session lifetime (default 24h)
  - SECURE_COOKIES (-secure-cookies): mark the session cookie Secure
*/
package cliparse
