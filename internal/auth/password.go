package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.DefaultCost is 10, which matches the cost the frontend was
// originally provisioned against. Changing it invalidates nothing
// (hashes embed their cost) but new hashes get the new factor.
const hashCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword returns nil when the plaintext matches the stored hash.
// A mismatch is a normal outcome, not an exceptional one.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
