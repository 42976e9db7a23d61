package auth

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// HashPassword derives a PHC-formatted argon2id hash from a plaintext
// password. The encoded string embeds the algorithm tag, parameters, and a
// random salt, so stored hashes stay verifiable across parameter upgrades.
// There is no maximum input length.
func HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// VerifyPassword checks a plaintext password against a stored hash. A wrong
// password returns (false, nil); only a malformed hash yields an error.
func VerifyPassword(password, hash string) (bool, error) {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return false, fmt.Errorf("invalid password hash: %w", err)
	}

	return match, nil
}
