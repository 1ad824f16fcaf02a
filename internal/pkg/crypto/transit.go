package crypto

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"

	"github.com/hashicorp/vault/api"

	"user-vault/internal/pkg/config"
)

// TransitRootKeyCipher 使用 HashiCorp Vault transit 引擎作为根密钥
// 密文为 transit 返回的 "vault:vN:..." 字符串字节
type TransitRootKeyCipher struct {
	client  *api.Client
	mount   string
	keyName string
}

var _ RootKeyCipher = (*TransitRootKeyCipher)(nil)

// NewTransitRootKeyCipher 创建 Vault 客户端
func NewTransitRootKeyCipher(cfg *config.VaultTransitConfig) (*TransitRootKeyCipher, error) {
	vc := api.DefaultConfig()
	if vc.Error != nil {
		return nil, fmt.Errorf("读取 Vault 环境配置失败: %w", vc.Error)
	}
	vc.Address = cfg.Address
	if cfg.Timeout > 0 {
		vc.Timeout = cfg.Timeout
	}

	client, err := api.NewClient(vc)
	if err != nil {
		return nil, fmt.Errorf("创建 Vault 客户端失败: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "transit"
	}

	return &TransitRootKeyCipher{client: client, mount: mount, keyName: cfg.KeyName}, nil
}

// EncryptWithRootKey POST {mount}/encrypt/{key}
func (c *TransitRootKeyCipher) EncryptWithRootKey(ctx context.Context, plaintext []byte) ([]byte, error) {
	secret, err := c.client.Logical().WriteWithContext(ctx, path.Join(c.mount, "encrypt", c.keyName), map[string]interface{}{
		"plaintext": base64.StdEncoding.EncodeToString(plaintext),
	})
	if err != nil {
		return nil, fmt.Errorf("vault transit 加密失败: %w", err)
	}

	ciphertext, err := dataString(secret, "ciphertext")
	if err != nil {
		return nil, err
	}
	return []byte(ciphertext), nil
}

// DecryptWithRootKey POST {mount}/decrypt/{key}
func (c *TransitRootKeyCipher) DecryptWithRootKey(ctx context.Context, ciphertext []byte) ([]byte, error) {
	secret, err := c.client.Logical().WriteWithContext(ctx, path.Join(c.mount, "decrypt", c.keyName), map[string]interface{}{
		"ciphertext": string(ciphertext),
	})
	if err != nil {
		return nil, fmt.Errorf("vault transit 解密失败: %w", err)
	}

	encoded, err := dataString(secret, "plaintext")
	if err != nil {
		return nil, err
	}

	plaintext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("vault transit 明文解码失败: %w", err)
	}
	return plaintext, nil
}

func dataString(secret *api.Secret, key string) (string, error) {
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault transit 响应为空")
	}
	v, ok := secret.Data[key].(string)
	if !ok {
		return "", fmt.Errorf("vault transit 响应缺少 %s", key)
	}
	return v, nil
}

// NewRootKeyCipher 按配置选择根密钥实现
func NewRootKeyCipher(cfg *config.CryptoConfig) (RootKeyCipher, error) {
	switch cfg.Provider {
	case config.CryptoProviderVault:
		c, err := NewTransitRootKeyCipher(&cfg.Vault)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.CryptoProviderLocal, "":
		c, err := NewLocalRootKeyCipher(cfg.RootKey)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("不支持的加密提供方: %s", cfg.Provider)
	}
}
