// Package crypto protects alert contact addresses at rest. Addresses are
// stored AES-256-GCM encrypted; cooldown and dedup lookups use a one-way
// hash so the plaintext never needs to be read back for those paths.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// ContactCrypto wraps a key derived from the configured secret.
type ContactCrypto struct {
	key [32]byte
}

func New(secret string) *ContactCrypto {
	return &ContactCrypto{key: sha256.Sum256([]byte(secret))}
}

// Encrypt returns base64(nonce || ciphertext).
func (c *ContactCrypto) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt.
func (c *ContactCrypto) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidCiphertext
	}

	block, err := aes.NewCipher(c.key[:])
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}

// ContactHash derives a deterministic, non-reversible lookup key from a
// contact address. Case and surrounding whitespace are normalized so the
// same address always hashes the same.
func (c *ContactCrypto) ContactHash(contact string) string {
	normalized := strings.ToLower(strings.TrimSpace(contact))
	mac := hmac.New(sha256.New, c.key[:])
	mac.Write([]byte(normalized))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewToken returns a random URL-safe token for alert verification links.
func NewToken() (string, error) {
	b := make([]byte, 24)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
