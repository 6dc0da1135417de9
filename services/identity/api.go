package identity

import "net/http"

// BasketCookieName is the fixed name of the cookie carrying the anonymous basket-owner token.
const BasketCookieName = "eShop.BasketOwner"

//go:generate mockgen -source=api.go -package identity -destination authenticator_mock.go Authenticator
type Authenticator interface {
	// AuthenticatedUsername returns the name of the signed-in user, if any.
	AuthenticatedUsername(r *http.Request) (string, bool)
}
