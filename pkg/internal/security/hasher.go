package security

import "golang.org/x/crypto/bcrypt"

func HashPassword(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(out), err
}

// VerifyPassword reports whether password matches the stored hash.
// A malformed stored hash counts as a mismatch.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
