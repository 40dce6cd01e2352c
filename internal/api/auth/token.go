package auth

import "golang.org/x/crypto/bcrypt"

// HashToken wraps bcrypt.GenerateFromPassword for admin token storage.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyToken wraps bcrypt.CompareHashAndPassword for admin token checks.
func VerifyToken(hash, token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
