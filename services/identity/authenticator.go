package identity

import (
	"net/http"
	"strings"
)

const iapEmailHeader = "X-Goog-Authenticated-User-Email"

type iapAuthenticator struct {
}

// NewIAPAuthenticator trusts the identity header set by Identity-Aware Proxy.
func NewIAPAuthenticator() Authenticator {
	return iapAuthenticator{}
}

func (a iapAuthenticator) AuthenticatedUsername(r *http.Request) (string, bool) {
	value := r.Header.Get(iapEmailHeader)
	if value == "" {
		return "", false
	}

	// Header value looks like "accounts.google.com:name@example.com"
	if idx := strings.LastIndex(value, ":"); idx >= 0 {
		value = value[idx+1:]
	}

	return value, value != ""
}
