package auth

import (
	"encoding/base64"
	"testing"

	"shop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenIssuer_Generate(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{TokenBytes: 32}}
	issuer := NewRandomTokenIssuer(cfg)

	token, err := issuer.Generate()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestRandomTokenIssuer_TokensAreUnique(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{TokenBytes: 16}}
	issuer := NewRandomTokenIssuer(cfg)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := issuer.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token repeated: %s", token)
		seen[token] = struct{}{}
	}
}
