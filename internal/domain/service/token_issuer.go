package service

// TokenIssuer mints the opaque bearer tokens written onto an account at
// login. Tokens carry no claims; possession is the whole credential.
type TokenIssuer interface {
	// Generate returns a new cryptographically random token of fixed length.
	Generate() (string, error)
}
