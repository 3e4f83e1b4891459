package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// GenerateAPIKey returns a new raw API key. The raw key is shown to the caller
// exactly once; only hashes derived from it are stored.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "nk_" + hex.EncodeToString(b), nil
}

// APIKeyLookupDigest returns an HMAC-SHA256 digest of the raw key under the
// given lookup key, hex-encoded. The digest is stored alongside the bcrypt
// hash so keys can be found by index instead of scanning every row.
func APIKeyLookupDigest(lookupKey []byte, rawKey string) string {
	m := hmac.New(sha256.New, lookupKey)
	m.Write([]byte(rawKey))
	return hex.EncodeToString(m.Sum(nil))
}

// APIKeyDigestEqual performs constant-time comparison of two lookup digests.
func APIKeyDigestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
