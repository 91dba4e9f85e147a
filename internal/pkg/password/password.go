package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const hashCost = bcrypt.DefaultCost

// Hash returns the bcrypt hash of plain. Empty input is rejected up front so
// an empty string never round-trips as a valid credential.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

// Compare checks plain against the stored hash. A mismatch comes back as
// ErrComparisonFailed; malformed hashes surface the bcrypt error as-is.
func Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}
	return nil
}
