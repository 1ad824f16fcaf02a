package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// RootKeyCipher 根密钥加解密能力（KMS 语义），不关心明文结构
type RootKeyCipher interface {
	EncryptWithRootKey(ctx context.Context, plaintext []byte) ([]byte, error)
	DecryptWithRootKey(ctx context.Context, ciphertext []byte) ([]byte, error)
}

const (
	minRootKeyLen = 16
	rootKeyInfo   = "user-vault/root-key/v1"
)

var ErrCiphertextTooShort = errors.New("密文太短")

// LocalRootKeyCipher 进程内 AES-256-GCM 根密钥
// 密文格式: nonce || ciphertext || tag
type LocalRootKeyCipher struct {
	aead cipher.AEAD
}

var _ RootKeyCipher = (*LocalRootKeyCipher)(nil)

// NewLocalRootKeyCipher 由配置的根密钥材料经 HKDF-SHA256 派生 32 字节 AES 密钥
// 根密钥可以是 hex 编码，也可以是原始字符串
func NewLocalRootKeyCipher(rootKey string) (*LocalRootKeyCipher, error) {
	material, err := hex.DecodeString(rootKey)
	if err != nil {
		material = []byte(rootKey)
	}
	if len(material) < minRootKeyLen {
		return nil, fmt.Errorf("根密钥长度至少 %d 字节", minRootKeyLen)
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, material, nil, []byte(rootKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("派生根密钥失败: %w", err)
	}
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &LocalRootKeyCipher{aead: aesGCM}, nil
}

// EncryptWithRootKey AES-GCM 加密
func (c *LocalRootKeyCipher) EncryptWithRootKey(_ context.Context, plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("生成nonce失败: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptWithRootKey AES-GCM 解密
func (c *LocalRootKeyCipher) DecryptWithRootKey(_ context.Context, ciphertext []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, data := ciphertext[:nonceSize], ciphertext[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("密文校验失败: %w", err)
	}

	return plaintext, nil
}
