package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// MinHTTPTimeout is the smallest accepted request timeout.
	MinHTTPTimeout = 5 * time.Second

	// MaxHTTPTimeout is the largest accepted request timeout.
	MaxHTTPTimeout = 300 * time.Second

	// ShortHTTPTimeout is used for quick probe operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// MaxRetryMax is the upper bound on the configurable retry count.
	MaxRetryMax = 10

	// MaxBackoff caps the exponential backoff delay between retries.
	MaxBackoff = 30 * time.Second
)

// API path families.
const (
	// APIBasePath is the default versioned REST root prepended to short
	// relative endpoints.
	APIBasePath = "/rest/api/2"

	// CloudSearchPath is the next-generation search endpoint used by
	// Atlassian Cloud instances.
	CloudSearchPath = "/rest/api/3/search/jql"

	// ServerSearchPath is the legacy search endpoint, relative to the
	// default REST root.
	ServerSearchPath = "/search"

	// AgileBasePath is the root of the Jira Agile API.
	AgileBasePath = "/rest/agile/1.0"
)

// Pagination bounds applied by the tool layer.
const (
	// DefaultMaxResults is the default page size for searches.
	DefaultMaxResults = 50

	// MaxMaxResults caps the page size a tool will request.
	MaxMaxResults = 100
)

// EpicLinkField is the classic epic link custom field. Linking an issue
// to an epic is an issue update against this field.
const EpicLinkField = "customfield_10014"
