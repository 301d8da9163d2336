package encrypter

import "golang.org/x/crypto/bcrypt"

// Encrypter hashes and verifies user passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) bool
}

type implEncrypter struct {
	cost int
}

// New creates a bcrypt-backed Encrypter with the default cost.
func New() Encrypter {
	return &implEncrypter{cost: bcrypt.DefaultCost}
}

func (e *implEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *implEncrypter) ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
