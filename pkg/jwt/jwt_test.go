package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse_IdaEVolta(t *testing.T) {
	tok, err := Generate("segredo", "u-1", "ana", "supervisor", "relampago", 5)
	require.NoError(t, err)

	c, err := Parse("segredo", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "u-1", c.Subject)
	assert.Equal(t, "ana", c.Username)
	assert.Equal(t, "supervisor", c.Role)
	assert.Equal(t, "relampago", c.Issuer)
}

func TestParse_SegredoErrado(t *testing.T) {
	tok, err := Generate("segredo", "u-1", "ana", "admin", "relampago", 5)
	require.NoError(t, err)

	_, err = Parse("outro", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate("segredo", "u-1", "ana", "admin", "relampago", -1)
	require.NoError(t, err)

	_, err = Parse("segredo", tok)
	assert.Error(t, err)
}

func TestGenerate_SegredoVazio(t *testing.T) {
	_, err := Generate("", "u-1", "ana", "admin", "relampago", 5)
	assert.Error(t, err)
}
