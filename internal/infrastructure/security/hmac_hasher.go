package security

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"errors"
)

// HMACHasher hashes passwords with HMAC-SHA512 under a fixed key and encodes
// the digest as standard base64. Equal inputs always produce equal hashes.
type HMACHasher struct {
	key []byte
}

func NewHMACHasher(key string) (*HMACHasher, error) {
	if key == "" {
		return nil, errors.New("security: hashing key is empty")
	}
	return &HMACHasher{key: []byte(key)}, nil
}

func (h *HMACHasher) Hash(plaintext string) string {
	mac := hmac.New(sha512.New, h.key)
	mac.Write([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
