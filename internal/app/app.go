package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Trail-App/internal/application"
	"Trail-App/internal/config"
	"Trail-App/internal/domain/repository"
	"Trail-App/internal/handler"
	"Trail-App/internal/infrastructure/database"
	"Trail-App/internal/infrastructure/trailapi"
	repoimpl "Trail-App/internal/repository"
)

// App アプリケーション全体の依存関係
type App struct {
	Messages application.MessageService
	Trails   application.TrailService
	Router   *gin.Engine
}

// New 設定に応じたデータソースを選択し、サービスとルーターを組み立てる
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	trailsRepo, err := NewTrailsRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	messages := application.NewMessageService()
	trails := application.NewTrailService(trailsRepo, messages, logger)

	return &App{
		Messages: messages,
		Trails:   trails,
		Router:   handler.NewRouter(trails, messages, logger),
	}, nil
}

// NewTrailsRepository TRAIL_SOURCE に対応するリポジトリを生成する
// Supabaseの場合は起動時にcitiesテーブルへの疎通を確認する
func NewTrailsRepository(ctx context.Context, cfg config.Config) (repository.TrailsRepository, error) {
	switch cfg.Source {
	case config.SourceAPI:
		return trailapi.NewTrailAPIClient(cfg.APIBaseURL, cfg.HTTPTimeout), nil
	case config.SourceSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, fmt.Errorf("app: supabase: %w", err)
		}
		if err := client.HealthCheck(ctx, repoimpl.CitiesTable); err != nil {
			return nil, fmt.Errorf("app: supabase: %w", err)
		}
		return repoimpl.NewSupabaseTrailsRepository(client), nil
	default:
		return nil, fmt.Errorf("app: unknown trail source %q", cfg.Source)
	}
}
