package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// SourceAPI トレイルREST APIをデータソースにする
	SourceAPI = "api"
	// SourceSupabase SupabaseのPostgRESTをデータソースにする
	SourceSupabase = "supabase"
)

// Config アプリケーション設定
type Config struct {
	Source          string        `mapstructure:"TRAIL_SOURCE"`
	APIBaseURL      string        `mapstructure:"TRAIL_API_BASE_URL"`
	HTTPTimeout     time.Duration `mapstructure:"TRAIL_HTTP_TIMEOUT"`
	SupabaseURL     string        `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey string        `mapstructure:"SUPABASE_ANON_KEY"`
	Port            string        `mapstructure:"PORT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

// Load .envファイルと環境変数から設定を読み込む
// .envファイルが無い場合はシステムの環境変数のみを使用する
func Load() (Config, error) {
	envLoaded := godotenv.Load() == nil

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("TRAIL_SOURCE", SourceAPI)
	v.SetDefault("TRAIL_API_BASE_URL", "http://localhost:3000")
	v.SetDefault("TRAIL_HTTP_TIMEOUT", "0s")
	v.SetDefault("SUPABASE_URL", "")
	v.SetDefault("SUPABASE_ANON_KEY", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if !envLoaded {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate データソースに必要な設定が揃っているか確認
func (c Config) Validate() error {
	switch c.Source {
	case SourceAPI:
		if c.APIBaseURL == "" {
			return fmt.Errorf("TRAIL_API_BASE_URL is required when TRAIL_SOURCE=%s", SourceAPI)
		}
	case SourceSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required when TRAIL_SOURCE=%s", SourceSupabase)
		}
	default:
		return fmt.Errorf("unknown TRAIL_SOURCE %q (expected %q or %q)", c.Source, SourceAPI, SourceSupabase)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("TRAIL_HTTP_TIMEOUT must not be negative")
	}
	return nil
}

// Addr サーバーの待ち受けアドレス
func (c Config) Addr() string {
	return ":" + c.Port
}
