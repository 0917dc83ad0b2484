package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword generates a salted bcrypt hash of the given password.
// The same password hashes to a different value on every call.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether the cleartext password matches the
// stored hash. A mismatch is not an error condition, just false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
