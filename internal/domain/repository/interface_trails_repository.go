package repository

import (
	"context"

	"Trail-App/internal/domain/model"
)

// TrailsRepository トレイルデータの取得・更新を行うデータソース
// 失敗は ErrTransport / ErrNotFound / ErrMalformedPayload のいずれかでラップして返す
type TrailsRepository interface {
	ListCities(ctx context.Context) ([]model.City, error)
	ListTrails(ctx context.Context, cityCode string) ([]model.Trail, error)
	// FindTrailsByID 0件または1件のスライスを返す（見つからなくてもエラーにしない）
	FindTrailsByID(ctx context.Context, id int) ([]model.Trail, error)
	// GetTrailByCode 見つからない場合は ErrNotFound を返す
	GetTrailByCode(ctx context.Context, code string) (*model.Trail, error)
	SearchTrails(ctx context.Context, term string) ([]model.Trail, error)
	Create(ctx context.Context, trail *model.Trail) (*model.Trail, error)
	Update(ctx context.Context, trail *model.Trail) (*model.Trail, error)
	// Delete レスポンスボディが空の場合は nil を返す
	Delete(ctx context.Context, id int) (*model.Trail, error)
	GetTrailDetail(ctx context.Context, code string) (*model.TrailDetail, error)
}
