package auth

import (
	"crypto/rand"
	"encoding/base64"

	"shop/config"
	"shop/internal/domain/service"

	"github.com/pkg/errors"
)

// randomTokenIssuer mints opaque API tokens from crypto/rand. The token is
// the whole credential, so its only properties are unguessability and a
// fixed length.
type randomTokenIssuer struct {
	tokenBytes int
}

// NewRandomTokenIssuer is the constructor for randomTokenIssuer.
func NewRandomTokenIssuer(cfg *config.Config) service.TokenIssuer {
	return &randomTokenIssuer{tokenBytes: cfg.Auth.TokenBytes}
}

// Generate returns a URL-safe token encoding tokenBytes of random data.
func (i *randomTokenIssuer) Generate() (string, error) {
	buf := make([]byte, i.tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
