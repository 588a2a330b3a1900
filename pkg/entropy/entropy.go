// Package entropy derives stable per-purpose secrets from the platform seed.
//
// Derivation is HMAC-SHA256 keyed with the seed over the label, hex encoded.
// The same (seed, label) pair always yields the same secret, distinct labels
// yield independent values by the PRF property of HMAC, and the seed cannot
// be recovered from any derived output.
package entropy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingSeed is returned when the platform seed is absent or empty.
// There is no safe fallback seed: every derived secret would silently
// change, so callers must treat this as a fatal configuration error.
var ErrMissingSeed = errors.New("platform seed is missing or empty")

// Derive computes the secret for a label. Labels may be arbitrary strings of
// any length; by convention they are "app-<id>-<purpose>".
func Derive(seed []byte, label string) (string, error) {
	if len(seed) == 0 {
		return "", ErrMissingSeed
	}

	mac := hmac.New(sha256.New, seed)
	mac.Write([]byte(label))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// LoadSeed reads the platform seed from its file, trimming the trailing
// newline the seed generator leaves behind. An unreadable or empty seed
// file reports ErrMissingSeed.
func LoadSeed(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingSeed
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	seed := strings.TrimSpace(string(data))
	if seed == "" {
		return nil, ErrMissingSeed
	}
	return []byte(seed), nil
}
