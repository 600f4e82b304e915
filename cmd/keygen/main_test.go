package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glg-capital.backend/pkg/redis"
)

func TestValidateInputs(t *testing.T) {
	assert.NoError(t, validateInputs(16))
	assert.Error(t, validateInputs(8))
	assert.Error(t, validateInputs(-1))
}

func TestWriteSecrets_ProducesUsableEnv(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeSecrets(&out, 24))

	env, err := godotenv.Parse(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Len(t, env["SESSION_ENCRYPTION_KEY"], 64)
	assert.Len(t, env["JWT_SECRET"], 48)

	_, err = redis.NewSessionStore(env["SESSION_ENCRYPTION_KEY"])
	assert.NoError(t, err)
}

func TestWriteSecrets_RandomFailure(t *testing.T) {
	orig := randomToken
	t.Cleanup(func() { randomToken = orig })
	randomToken = func(int) (string, error) { return "", errors.New("entropy exhausted") }

	err := writeSecrets(&bytes.Buffer{}, 32)
	assert.ErrorContains(t, err, "entropy exhausted")
}
