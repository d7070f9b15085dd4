package service

// TokenService defines the interface for issuing and verifying the bearer
// tokens that carry a user identity between requests.
//
// Tokens are stateless: they are signed with a single process-wide secret
// fixed at startup, and there is no rotation, revocation, or server-side
// session state. A token stays valid for its full lifetime no matter what
// happens on the server after issuance.
type TokenService interface {
	// Issue creates a signed token embedding the user identity, expiring a
	// fixed interval after issuance.
	Issue(userID int64) (string, error)

	// Verify validates the signature and expiry of a token and returns the
	// embedded user identity. It fails with the domain's TokenExpired error
	// when the expiry is in the past, and with TokenInvalid for any other
	// signature, format, or claim failure.
	Verify(token string) (int64, error)
}
