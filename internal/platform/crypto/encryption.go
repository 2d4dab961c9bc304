package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrCipherDisabled     = errors.New("sealed field present but DATA_ENCRYPTION_KEY is not set")
)

// FieldCipher seals individual sensitive columns (employee ID numbers) with AES-256-GCM.
// A nil or unkeyed cipher is a pass-through so plaintext deployments keep working.
type FieldCipher struct {
	aead cipher.AEAD
}

func NewFieldCipher(key string) (*FieldCipher, error) {
	if key == "" {
		return &FieldCipher{}, nil
	}
	decoded := decodeKey(key)
	if len(decoded) != 32 {
		return nil, errors.New("DATA_ENCRYPTION_KEY must be 32 bytes after decoding")
	}
	block, err := aes.NewCipher(decoded)
	if err != nil {
		return nil, errors.Wrap(err, "init aes")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "init gcm")
	}
	return &FieldCipher{aead: aead}, nil
}

func (c *FieldCipher) Enabled() bool {
	return c != nil && c.aead != nil
}

// Seal returns nonce||ciphertext, or nil when the cipher is disabled or value is empty.
func (c *FieldCipher) Seal(value string) ([]byte, error) {
	if !c.Enabled() || value == "" {
		return nil, nil
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}
	return c.aead.Seal(nonce, nonce, []byte(value), nil), nil
}

// Open reverses Seal. When sealed is empty the fallback plaintext column value is returned.
func (c *FieldCipher) Open(sealed []byte, fallback string) (string, error) {
	if len(sealed) == 0 {
		return fallback, nil
	}
	if !c.Enabled() {
		return "", ErrCipherDisabled
	}
	size := c.aead.NonceSize()
	if len(sealed) < size {
		return "", ErrCiphertextTooShort
	}
	plain, err := c.aead.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return "", errors.Wrap(err, "open sealed field")
	}
	return string(plain), nil
}

func decodeKey(raw string) []byte {
	if len(raw) == 64 {
		if decoded, err := hex.DecodeString(raw); err == nil {
			return decoded
		}
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	return []byte(raw)
}
