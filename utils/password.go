package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the raw password.
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword reports whether raw matches the stored hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
