package core

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a one-way hash of the password
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored hash
	Compare(hash, password string) bool
}

// TokenClaims is the identity carried by an access token
type TokenClaims struct {
	UserID string
	Name   string
	UpiID  string
	Phone  string
}

// TokenIssuer issues and verifies access tokens
type TokenIssuer interface {
	// Issue signs a new token for the given identity
	Issue(claims TokenClaims) (string, error)
	// Verify parses a token and returns its identity
	//
	// Possible errors:
	// - ErrInvalidToken: If the token is malformed, expired or badly signed
	Verify(token string) (*TokenClaims, error)
}

// IDGenerator produces unique identifiers for new records
type IDGenerator interface {
	NewID() string
}
