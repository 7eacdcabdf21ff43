package catalog

import "github.com/google/uuid"

// TokenGenerator generates session tokens correlating catalog records with
// the render that produced them. Implemented by UUIDGenerator (production)
// and FixedGenerator (tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDGenerator issues RFC 4122 UUIDs.
type UUIDGenerator struct{}

// Generate implements TokenGenerator.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// FixedGenerator always returns the same token. Deterministic tests only.
type FixedGenerator struct {
	Token string
}

// Generate implements TokenGenerator.
func (g FixedGenerator) Generate() string {
	return g.Token
}
