package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"user-vault/pkg/constants"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Crypto    CryptoConfig    `mapstructure:"crypto"`
	Log       LogConfig       `mapstructure:"log"`
	Vault     VaultConfig     `mapstructure:"vault"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql, postgres
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"ssl_mode"` // 仅 postgres
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	AccessTokenExpire int    `mapstructure:"access_token_expire"` // 秒
}

// CryptoConfig 根密钥加密配置
type CryptoConfig struct {
	Provider string             `mapstructure:"provider"` // local, vault
	RootKey  string             `mapstructure:"root_key"` // local: 根密钥材料（hex 或任意字符串，经 HKDF 派生）
	Vault    VaultTransitConfig `mapstructure:"vault"`
}

// VaultTransitConfig HashiCorp Vault transit 引擎配置
type VaultTransitConfig struct {
	Address string        `mapstructure:"address"`
	Token   string        `mapstructure:"token"`
	Mount   string        `mapstructure:"mount"`
	KeyName string        `mapstructure:"key_name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// VaultConfig 凭据服务配置
type VaultConfig struct {
	DecryptConcurrency int  `mapstructure:"decrypt_concurrency"` // 列表并发解密数
	StrictOrgCheck     bool `mapstructure:"strict_org_check"`    // 读写单条凭据时同时校验组织
	MaxPayloadBytes    int  `mapstructure:"max_payload_bytes"`
}

// RateLimitConfig 限流配置（按客户端IP，每分钟请求数）
type RateLimitConfig struct {
	ReadPerMinute  int `mapstructure:"read_per_minute"`
	WritePerMinute int `mapstructure:"write_per_minute"`
}

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	CryptoProviderLocal = "local"
	CryptoProviderVault = "vault"
)

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// 读取环境变量，例如 CRYPTO_ROOT_KEY 覆盖 crypto.root_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	GlobalConfig = config

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "user-vault")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("database.log_level", "silent")

	v.SetDefault("auth.jwt.access_token_expire", 3600)

	v.SetDefault("crypto.provider", CryptoProviderLocal)
	v.SetDefault("crypto.vault.mount", "transit")
	v.SetDefault("crypto.vault.timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("vault.decrypt_concurrency", 8)
	v.SetDefault("vault.max_payload_bytes", constants.MaxCredentialPayloadBytes)

	v.SetDefault("rate_limit.read_per_minute", 600)
	v.SetDefault("rate_limit.write_per_minute", 150)
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}

	switch c.Crypto.Provider {
	case CryptoProviderLocal:
		if c.Crypto.RootKey == "" {
			return fmt.Errorf("crypto.root_key 未配置")
		}
	case CryptoProviderVault:
		if c.Crypto.Vault.Address == "" || c.Crypto.Vault.KeyName == "" {
			return fmt.Errorf("crypto.vault.address 与 crypto.vault.key_name 必填")
		}
	default:
		return fmt.Errorf("不支持的加密提供方: %s", c.Crypto.Provider)
	}

	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret 未配置")
	}

	if c.Vault.MaxPayloadBytes <= 0 {
		return fmt.Errorf("vault.max_payload_bytes 必须大于0")
	}

	return nil
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host,
			c.Port,
			c.Username,
			c.Password,
			c.Database,
			c.SSLMode,
		)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
