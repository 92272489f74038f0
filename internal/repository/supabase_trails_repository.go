package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"Trail-App/internal/domain/model"
	"Trail-App/internal/domain/repository"
	"Trail-App/internal/infrastructure/database"
	"Trail-App/internal/infrastructure/payload"
)

const (
	// CitiesTable 都市テーブル（ヘルスチェックにも使用）
	CitiesTable       = "cities"
	trailsTable       = "trails"
	trailDetailsTable = "trail_details"
	trailColumns      = "id,code,name,city_code,type,segments"
)

// trailRow trailsテーブルの1行（集計値は保存しない）
type trailRow struct {
	ID       int             `json:"id,omitempty"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	CityCode string          `json:"city_code"`
	Type     int             `json:"type"`
	Segments []model.Segment `json:"segments"`
}

func toTrailRow(trail *model.Trail) trailRow {
	return trailRow{
		ID:       trail.ID,
		Code:     trail.Code,
		Name:     trail.Name,
		CityCode: trail.CityCode,
		Type:     trail.Type,
		Segments: trail.Segments,
	}
}

// SupabaseTrailsRepository Supabase（PostgREST）を使用したTrailsRepositoryの実装
type SupabaseTrailsRepository struct {
	client *database.SupabaseClient
}

// NewSupabaseTrailsRepository 新しいSupabaseTrailsRepositoryインスタンスを作成
func NewSupabaseTrailsRepository(client *database.SupabaseClient) repository.TrailsRepository {
	return &SupabaseTrailsRepository{
		client: client,
	}
}

func (r *SupabaseTrailsRepository) ListCities(ctx context.Context) ([]model.City, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(CitiesTable).Select("*", "", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch cities: %v", repository.ErrTransport, err)
	}
	return payload.DecodeList[model.City](data)
}

func (r *SupabaseTrailsRepository) ListTrails(ctx context.Context, cityCode string) ([]model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Select(trailColumns, "", false).
		Eq("city_code", cityCode).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch trails for city %s: %v", repository.ErrTransport, cityCode, err)
	}
	return payload.DecodeList[model.Trail](data)
}

func (r *SupabaseTrailsRepository) FindTrailsByID(ctx context.Context, id int) ([]model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Select(trailColumns, "", false).
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch trail id=%d: %v", repository.ErrTransport, id, err)
	}
	return payload.DecodeList[model.Trail](data)
}

func (r *SupabaseTrailsRepository) GetTrailByCode(ctx context.Context, code string) (*model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Select(trailColumns, "", false).
		Eq("code", code).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch trail code=%s: %v", repository.ErrTransport, code, err)
	}
	return firstOrNotFound[model.Trail](data, "trail code="+code)
}

func (r *SupabaseTrailsRepository) SearchTrails(ctx context.Context, term string) ([]model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Select(trailColumns, "", false).
		Ilike("name", fmt.Sprintf("*%s*", escapeLikePattern(term))).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to search trails: %v", repository.ErrTransport, err)
	}
	return payload.DecodeList[model.Trail](data)
}

func (r *SupabaseTrailsRepository) Create(ctx context.Context, trail *model.Trail) (*model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Insert(toTrailRow(trail), false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create trail: %v", repository.ErrTransport, err)
	}
	return firstOrNotFound[model.Trail](data, "created trail")
}

func (r *SupabaseTrailsRepository) Update(ctx context.Context, trail *model.Trail) (*model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Update(toTrailRow(trail), "representation", "").
		Eq("id", strconv.Itoa(trail.ID)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update trail id=%d: %v", repository.ErrTransport, trail.ID, err)
	}
	return firstOrNotFound[model.Trail](data, fmt.Sprintf("trail id=%d", trail.ID))
}

func (r *SupabaseTrailsRepository) Delete(ctx context.Context, id int) (*model.Trail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailsTable).
		Delete("representation", "").
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to delete trail id=%d: %v", repository.ErrTransport, id, err)
	}
	return firstOrNotFound[model.Trail](data, fmt.Sprintf("trail id=%d", id))
}

func (r *SupabaseTrailsRepository) GetTrailDetail(ctx context.Context, code string) (*model.TrailDetail, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	data, _, err := r.client.GetClient().From(trailDetailsTable).
		Select("*", "", false).
		Eq("code", code).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch trail detail code=%s: %v", repository.ErrTransport, code, err)
	}
	return firstOrNotFound[model.TrailDetail](data, "trail detail code="+code)
}

// firstOrNotFound PostgRESTは常に配列を返すため、先頭要素を取り出す
func firstOrNotFound[T any](data []byte, what string) (*T, error) {
	items, err := payload.DecodeList[T](data)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, what)
	}
	return &items[0], nil
}

// checkContext PostgRESTクライアントはcontextを受け取らないため、送信前にキャンセルを確認する
// 送信済みのリクエストは中断できない
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrTransport, err)
	}
	return nil
}

// likeEscaper ilikeのワイルドカードとして解釈される文字をエスケープする
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`, "*", `\*`)

// escapeLikePattern 検索語を部分一致のリテラルとして扱う
func escapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}
