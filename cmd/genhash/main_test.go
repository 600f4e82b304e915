package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glg-capital.backend/pkg/crypto"
)

func TestRun_PrintsVerifiableHash(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"GLGAdmin2024!Secure"}, &out))

	hash := strings.TrimSpace(out.String())
	assert.True(t, crypto.CheckPassword("GLGAdmin2024!Secure", hash))
	assert.False(t, crypto.CheckPassword("other", hash))
}

func TestRun_RequiresExactlyOnePassword(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {"a", "b"}} {
		assert.ErrorIs(t, run(args, &bytes.Buffer{}), errUsage)
	}
}

func TestRun_HashFailure(t *testing.T) {
	orig := hashPassword
	t.Cleanup(func() { hashPassword = orig })
	hashPassword = func(string) (string, error) { return "", errors.New("too long") }

	err := run([]string{"pw"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "too long")
}
