package database

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient Supabaseクライアントのラッパー
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 新しいSupabaseクライアントを作成
func NewSupabaseClient(supabaseURL, supabaseAnonKey string) (*SupabaseClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is not set")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is not set")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck 指定テーブルから1行だけ取得して接続と認証を確認する
func (sc *SupabaseClient) HealthCheck(ctx context.Context, table string) error {
	if sc.Client == nil {
		return fmt.Errorf("Supabase client is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Supabase health check canceled: %w", err)
	}

	if _, _, err := sc.Client.From(table).Select("id", "", false).Limit(1, "").Execute(); err != nil {
		return fmt.Errorf("Supabase health check on %s failed: %w", table, err)
	}
	return nil
}
