package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/canonry/internal/melody"
)

// Domain prefix for content-addressed identity. The version suffix enables
// future algorithm migration without colliding with existing IDs.
const domainPerformance = "canonry/performance/v1"

// hashWithDomain computes SHA-256 with domain separation:
// SHA256(domain + 0x00 + data). The null byte prevents domain/data
// boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// PerformanceID computes the content-addressed ID of a rendered note list.
// Identity covers the notes only - not the title or session token - so the
// same rendering stored twice dedupes regardless of who rendered it.
func PerformanceID(notes []melody.Note) (string, error) {
	flat := make([]any, len(notes))
	for i, n := range notes {
		flat[i] = n.Map()
	}
	canonical, err := marshalCanonical(flat)
	if err != nil {
		return "", fmt.Errorf("PerformanceID: failed to marshal: %w", err)
	}
	return hashWithDomain(domainPerformance, canonical), nil
}
