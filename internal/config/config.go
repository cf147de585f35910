package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBackendURL 本地开发时问答后端的默认地址
	DefaultBackendURL = "http://localhost:8000"

	// RelativeBackendURL 与站点同域部署时使用的相对API路径
	RelativeBackendURL = "/api"

	// DefaultQueryTimeout 单次问答请求的超时上限，超时按服务端错误处理
	DefaultQueryTimeout = 30 * time.Second
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Store   StoreConfig   `mapstructure:"store"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	PublicHost     string        `mapstructure:"public_host"` // 站点对外域名，用于后端地址推断
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type StoreConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 加载配置文件并完成后端地址解析
// 配置在启动时解析一次，之后作为只读值传入各组件，不再有全局可变状态
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHAT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// 环境变量显式覆盖优先于配置文件
	cfg.Backend.BaseURL = ResolveBackendURL(
		os.Getenv("CHAT_BACKEND_URL"),
		cfg.Backend.BaseURL,
		cfg.Server.PublicHost,
	)

	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = DefaultQueryTimeout
	}

	// 会话存储默认与问答后端同址
	if cfg.Store.BaseURL == "" {
		if storeURL := os.Getenv("CHAT_STORE_URL"); storeURL != "" {
			cfg.Store.BaseURL = storeURL
		} else {
			cfg.Store.BaseURL = cfg.Backend.BaseURL
		}
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = DefaultQueryTimeout
	}

	return cfg, nil
}

// ResolveBackendURL 按固定优先级解析问答后端地址：
// 显式覆盖 > 配置注入值 > 域名推断（非本机域名走同域相对路径） > 硬编码默认值
func ResolveBackendURL(explicit, configured, publicHost string) string {
	if explicit != "" {
		return explicit
	}
	if configured != "" {
		return configured
	}
	if publicHost != "" && !isLocalHost(publicHost) {
		return RelativeBackendURL
	}
	return DefaultBackendURL
}

func isLocalHost(host string) bool {
	return host == "localhost" || strings.HasPrefix(host, "127.")
}
