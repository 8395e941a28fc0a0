package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for all stored hashes.
const Cost = 12

// ErrHash indicates an internal hashing library failure, e.g. a malformed
// stored hash. A plain mismatch is not an error.
var ErrHash = errors.New("password hashing failed")

// Hash derives a salted bcrypt hash from a plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHash, err)
	}
	return string(hashed), nil
}

// Compare checks a plaintext password against a stored bcrypt hash.
// It returns (false, nil) on mismatch and an error only when the stored
// hash itself cannot be processed.
func Compare(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHash, err)
	}
}
