package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestStaticAdmin_Plaintext(t *testing.T) {
	a := NewStaticAdmin("admin@hotelmaruthi.com", "secret123")

	assert.NoError(t, a.Verify("admin@hotelmaruthi.com", "secret123"))
	assert.ErrorIs(t, a.Verify("admin@hotelmaruthi.com", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Verify("someone@else.com", "secret123"), ErrInvalidCredentials)
}

func TestStaticAdmin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	a := NewStaticAdmin("admin@hotelmaruthi.com", string(hash))
	assert.NoError(t, a.Verify("admin@hotelmaruthi.com", "secret123"))
	assert.ErrorIs(t, a.Verify("admin@hotelmaruthi.com", "wrong"), ErrInvalidCredentials)
}

func TestStaticAdmin_EmptyConfigRejectsEveryone(t *testing.T) {
	a := NewStaticAdmin("", "")
	assert.ErrorIs(t, a.Verify("", ""), ErrInvalidCredentials)
}
