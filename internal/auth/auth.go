// Package auth verifies the admin identity. This is a credential check
// only: no sessions or tokens are issued.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Authenticator interface {
	Verify(username, password string) error
}

// StaticAdmin checks against a single configured identity. The configured
// password may be a bcrypt hash or plaintext; plaintext exists for local
// setups and test fixtures.
type StaticAdmin struct {
	username string
	password string
}

func NewStaticAdmin(username, password string) *StaticAdmin {
	return &StaticAdmin{username: username, password: password}
}

func (a *StaticAdmin) Verify(username, password string) error {
	if a.username == "" || username != a.username {
		return ErrInvalidCredentials
	}
	if isBcryptHash(a.password) {
		if err := bcrypt.CompareHashAndPassword([]byte(a.password), []byte(password)); err != nil {
			return ErrInvalidCredentials
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

var _ Authenticator = (*StaticAdmin)(nil)
