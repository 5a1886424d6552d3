package jira

import "encoding/base64"

// AuthHeaders derives the immutable header set sent with every request.
// It is computed exactly once at client construction: a Bearer header
// when a personal access token is configured, otherwise Basic auth over
// the username:token pair.
func AuthHeaders(cfg *Config) map[string]string {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}

	if cfg.UsePAT() {
		headers["Authorization"] = "Bearer " + cfg.PersonalAccessToken
	} else {
		credentials := cfg.Username + ":" + cfg.APIToken
		headers["Authorization"] = "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
	}

	return headers
}
