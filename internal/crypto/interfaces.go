// Package crypto holds the credential-hashing primitives of the server.
// It knows nothing about HTTP, the database, or users; its only job is to
// turn plaintext passwords into storable digests and verify them later.
package crypto

// PasswordHasher is a one-way password hashing scheme.
//
// Hash must produce a salted digest from an adaptive, deliberately slow
// algorithm; Verify must compare in constant time with respect to the
// secret material as far as the underlying primitive allows.
type PasswordHasher interface {
	// Hash derives a storable digest from the plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously stored digest.
	Verify(password, digest string) bool
}
