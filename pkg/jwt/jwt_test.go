package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jonnattanChoque/CRMGraphQL/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// Un token generado debe decodificarse de vuelta a la misma identidad.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "abc123", "laura@demo.local", "Laura", "Mejía", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.UserID)
	assert.Equal(t, "laura@demo.local", claims.Email)
	assert.Equal(t, "Laura", claims.FirstName)
	assert.Equal(t, "Mejía", claims.LastName)
}

// Un token firmado con otro secreto debe rechazarse.
func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", "abc123", "laura@demo.local", "Laura", "Mejía", time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Un token expirado debe rechazarse.
func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "abc123", "laura@demo.local", "Laura", "Mejía", -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Generar sin secreto es un error de programación, no un token anónimo.
func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "abc123", "laura@demo.local", "Laura", "Mejía", time.Hour)
	assert.Error(t, err)
}

// Un token corrupto debe rechazarse sin pánico.
func TestParse_TokenCorrupto(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}
