package credentials

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/willbank/internal/common"
	"github.com/dmitrijs2005/willbank/internal/cryptox"
)

// saltKey holds the base64 KDF salt in the wrapped repository.
const saltKey = "__salt"

// SealedRepository encrypts every value before handing it to the wrapped
// repository. Keys are stored in clear.
type SealedRepository struct {
	inner Repository
	key   []byte
}

// NewSealedRepository derives the sealing key from passphrase and the salt
// stored in inner, creating the salt on first use.
func NewSealedRepository(ctx context.Context, inner Repository, passphrase []byte) (*SealedRepository, error) {
	salt, err := loadOrCreateSalt(ctx, inner)
	if err != nil {
		return nil, err
	}
	return &SealedRepository{inner: inner, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func loadOrCreateSalt(ctx context.Context, inner Repository) ([]byte, error) {
	encoded, ok, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if ok {
		salt, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("corrupt store salt: %w", err)
		}
		return salt, nil
	}

	salt, err := cryptox.RandomBytes(cryptox.SaltSize)
	if err != nil {
		return nil, err
	}
	if err := inner.Set(ctx, saltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, err
	}
	return salt, nil
}

func (r *SealedRepository) seal(value string) (string, error) {
	sealed, err := cryptox.Seal([]byte(value), r.key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (r *SealedRepository) open(key, encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("credential[%s]: %w", key, common.ErrWrongPassphrase)
	}
	plain, err := cryptox.Open(sealed, r.key)
	if err != nil {
		return "", fmt.Errorf("credential[%s]: %w", key, common.ErrWrongPassphrase)
	}
	return string(plain), nil
}

func (r *SealedRepository) Get(ctx context.Context, key string) (string, bool, error) {
	encoded, ok, err := r.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}
	value, err := r.open(key, encoded)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *SealedRepository) Set(ctx context.Context, key, value string) error {
	sealed, err := r.seal(value)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *SealedRepository) SetMany(ctx context.Context, values map[string]string) error {
	sealed := make(map[string]string, len(values))
	for k, v := range values {
		s, err := r.seal(v)
		if err != nil {
			return err
		}
		sealed[k] = s
	}
	return r.inner.SetMany(ctx, sealed)
}

func (r *SealedRepository) Delete(ctx context.Context, keys ...string) error {
	return r.inner.Delete(ctx, keys...)
}

// Clear removes the sealed values but keeps the salt so the same passphrase
// keeps working.
func (r *SealedRepository) Clear(ctx context.Context) error {
	salt, _, err := r.inner.Get(ctx, saltKey)
	if err != nil {
		return err
	}
	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	return r.inner.Set(ctx, saltKey, salt)
}
