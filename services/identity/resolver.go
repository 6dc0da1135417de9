package identity

import (
	"net/http"

	"github.com/eshopweb/storefront/lib/mytime"
	"github.com/eshopweb/storefront/lib/myuuid"
)

// Resolver derives the basket-owner key for a single request. The key is
// resolved once at the request boundary and passed explicitly into every
// downstream operation, never re-derived mid-flow.
type Resolver struct {
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func NewResolver(nower mytime.Nower, uuider myuuid.UUIDer) *Resolver {
	return &Resolver{
		nower:  nower,
		uuider: uuider,
	}
}

// Resolve unifies authenticated-username and anonymous-cookie-token into one
// owner key. An authenticated name always wins and leaves the anonymous
// cookie untouched. A syntactically valid cookie token is returned unchanged.
// Otherwise a fresh token is generated and the returned cookie must be set by
// the caller.
func (r Resolver) Resolve(cookieValue string, authenticatedName string) (string, *http.Cookie) {
	if authenticatedName != "" {
		return authenticatedName, nil
	}

	if cookieValue != "" && myuuid.IsValid(cookieValue) {
		return cookieValue, nil
	}

	token := r.uuider.Create()

	return token, &http.Cookie{
		Name:     BasketCookieName,
		Value:    token,
		Path:     "/",
		Expires:  r.nower.Now().AddDate(10, 0, 0),
		SameSite: http.SameSiteLaxMode,
	}
}

// ResolveFromRequest is the single owner-key entrypoint used by the basket,
// checkout and order paths so that all of them agree on the same key within
// one request.
func (r Resolver) ResolveFromRequest(req *http.Request, authenticator Authenticator) (string, *http.Cookie) {
	authenticatedName := ""
	if name, ok := authenticator.AuthenticatedUsername(req); ok {
		authenticatedName = name
	}

	cookieValue := ""
	if cookie, err := req.Cookie(BasketCookieName); err == nil {
		cookieValue = cookie.Value
	}

	return r.Resolve(cookieValue, authenticatedName)
}
