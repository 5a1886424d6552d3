// Package jira holds the public surface of the Jira MCP server: the
// resolved configuration, the typed error taxonomy shared by every API
// call, the authentication header derivation, and the payload types the
// formatting layer renders.
//
// The actual request pipeline lives in internal/http and the
// per-resource clients in internal/client; this package only defines
// what callers of those clients see.
package jira
