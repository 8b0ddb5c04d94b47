package core

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts one-way password hashing so services can be tested
// with a cheap fake.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Check(hash, plaintext string) bool
}

// BcryptHasher hashes passwords with bcrypt. Each call salts independently,
// so hashing the same plaintext twice yields different outputs.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher clamps cost into bcrypt's supported range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether plaintext matches hash. It fails closed: a malformed
// hash returns false rather than an error or panic.
func (h *BcryptHasher) Check(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
