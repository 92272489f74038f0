package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Trail-App/internal/config"
	"Trail-App/internal/infrastructure/trailapi"
	repoimpl "Trail-App/internal/repository"
)

func TestNewTrailsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("APIモードはRESTクライアント", func(t *testing.T) {
		repo, err := NewTrailsRepository(ctx, config.Config{Source: config.SourceAPI, APIBaseURL: "http://localhost:3000"})

		require.NoError(t, err)
		assert.IsType(t, &trailapi.TrailAPIClient{}, repo)
	})

	t.Run("SupabaseモードはPostgRESTリポジトリ", func(t *testing.T) {
		checked := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			checked <- r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		repo, err := NewTrailsRepository(ctx, config.Config{
			Source:          config.SourceSupabase,
			SupabaseURL:     srv.URL,
			SupabaseAnonKey: "anon",
		})

		require.NoError(t, err)
		assert.IsType(t, &repoimpl.SupabaseTrailsRepository{}, repo)
		assert.Equal(t, "/rest/v1/"+repoimpl.CitiesTable, <-checked)
	})

	t.Run("Supabaseに接続できない場合はエラー", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		_, err := NewTrailsRepository(ctx, config.Config{
			Source:          config.SourceSupabase,
			SupabaseURL:     srv.URL,
			SupabaseAnonKey: "anon",
		})

		assert.Error(t, err)
	})

	t.Run("Supabaseモードでキーなしはエラー", func(t *testing.T) {
		_, err := NewTrailsRepository(ctx, config.Config{Source: config.SourceSupabase, SupabaseURL: "http://localhost:54321"})

		assert.Error(t, err)
	})

	t.Run("不明なデータソースはエラー", func(t *testing.T) {
		_, err := NewTrailsRepository(ctx, config.Config{Source: "ftp"})

		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	a, err := New(context.Background(), config.Config{Source: config.SourceAPI, APIBaseURL: "http://localhost:3000"}, zap.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, a.Router)
	assert.NotNil(t, a.Trails)
	assert.Empty(t, a.Messages.Messages())
}
