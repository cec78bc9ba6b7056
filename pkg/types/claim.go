package types

import "time"

// AdminClaim identifies the authenticated admin performing a mutation.
// The single-admin actor is passed explicitly into every Registry and
// Writer operation rather than held as ambient state. A zero claim is
// rejected with ErrUnauthorized.
type AdminClaim struct {
	Subject  string    // Admin username the session was issued to.
	IssuedAt time.Time // When the session token was issued.
}

// Valid reports whether the claim identifies an admin.
func (c AdminClaim) Valid() bool {
	return c.Subject != ""
}
