// Package crypto provides the credential hashing primitives used by the
// authentication service.
//
// The only implementation is a bcrypt-backed hasher. bcrypt is an adaptive
// algorithm: it embeds a random salt and a work factor in every hash, so two
// hashes of the same password differ while both verify correctly.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way salted password transform plus its
// constant-time verifier.
//
// Implementations must never make the plaintext re-derivable from the
// returned hash and must be safe for concurrent use.
type PasswordHasher interface {
	// Hash transforms a plaintext password into an opaque salted hash.
	// The output differs between calls for the same input (random salt)
	// while remaining verifiable by Verify.
	Hash(password string) (string, error)

	// Verify reports whether password matches the given opaque hash.
	// The comparison is constant-time with respect to the hash contents.
	// A malformed or truncated hash yields false, never an error or panic.
	Verify(password string, hash string) bool
}
