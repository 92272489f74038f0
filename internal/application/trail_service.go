package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"Trail-App/internal/domain/model"
	"Trail-App/internal/domain/repository"
)

// messagePrefix メッセージログに記録する際の接頭辞
const messagePrefix = "TrailService: "

// TrailService トレイルデータを取得・更新するゲートウェイ
// どの操作もエラーを返さず、失敗時はメッセージログに記録した上でフォールバック値を返す
type TrailService interface {
	// ListCities 有効な都市の一覧を取得（失敗時は空スライス）
	ListCities(ctx context.Context) []model.City

	// ListTrails 都市のトレイルを取得し、種別・周回条件で絞り込んで並び替える（失敗時は空スライス）
	ListTrails(ctx context.Context, query model.TrailQuery) []model.Trail

	// GetTrailLenient IDでトレイルを取得（見つからない・失敗時はnil）
	GetTrailLenient(ctx context.Context, id int) *model.Trail

	// GetTrailStrict コードでトレイルを取得（404・失敗時はnil）
	GetTrailStrict(ctx context.Context, code string) *model.Trail

	// SearchTrails 名前に検索語を含むトレイルを取得（空の検索語は通信せずに空スライス）
	SearchTrails(ctx context.Context, term string) []model.Trail

	// CreateTrail トレイルを新規作成（失敗時はnil）
	CreateTrail(ctx context.Context, trail *model.Trail) *model.Trail

	// UpdateTrail トレイルを更新（失敗時はnil）
	UpdateTrail(ctx context.Context, trail *model.Trail) *model.Trail

	// DeleteTrail トレイルを削除（レスポンスが空・失敗時はnil）
	DeleteTrail(ctx context.Context, id int) *model.Trail

	// GetTrailDetail コードでトレイル詳細を取得（失敗時はnil）
	GetTrailDetail(ctx context.Context, code string) *model.TrailDetail
}

// trailServiceImpl TrailServiceの実装
type trailServiceImpl struct {
	trailsRepo repository.TrailsRepository
	messages   MessageService
	logger     *zap.Logger
}

// NewTrailService TrailServiceの新しいインスタンスを作成
func NewTrailService(trailsRepo repository.TrailsRepository, messages MessageService, logger *zap.Logger) TrailService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &trailServiceImpl{
		trailsRepo: trailsRepo,
		messages:   messages,
		logger:     logger,
	}
}

func (s *trailServiceImpl) ListCities(ctx context.Context) []model.City {
	cities, err := s.trailsRepo.ListCities(ctx)
	if err != nil {
		return handleError(s, "getCities", err, []model.City{})
	}

	active := model.FilterActiveCities(cities)
	s.log("fetched cities")
	return active
}

func (s *trailServiceImpl) ListTrails(ctx context.Context, query model.TrailQuery) []model.Trail {
	trails, err := s.trailsRepo.ListTrails(ctx, query.CityCode)
	if err != nil {
		return handleError(s, "getTrails", err, []model.Trail{})
	}

	mergeAll(trails)
	result := query.Apply(trails)

	s.logger.Debug("trails filtered",
		zap.String("city", query.CityCode),
		zap.Int("fetched", len(trails)),
		zap.Int("count", len(result)))
	s.log("fetched trails")
	return result
}

func (s *trailServiceImpl) GetTrailLenient(ctx context.Context, id int) *model.Trail {
	trails, err := s.trailsRepo.FindTrailsByID(ctx, id)
	if err != nil {
		return handleError[*model.Trail](s, fmt.Sprintf("getTrail id=%d", id), err, nil)
	}

	if len(trails) == 0 {
		s.log(fmt.Sprintf("did not find trail id=%d", id))
		return nil
	}

	trail := trails[0]
	trail.MergeSegments()
	s.log(fmt.Sprintf("fetched trail id=%d", id))
	return &trail
}

func (s *trailServiceImpl) GetTrailStrict(ctx context.Context, code string) *model.Trail {
	trail, err := s.trailsRepo.GetTrailByCode(ctx, code)
	if err != nil {
		return handleError[*model.Trail](s, fmt.Sprintf("getTrail id=%s", code), err, nil)
	}
	if trail == nil {
		err := fmt.Errorf("%w: empty response for trail code=%s", repository.ErrNotFound, code)
		return handleError[*model.Trail](s, fmt.Sprintf("getTrail id=%s", code), err, nil)
	}

	trail.MergeSegments()
	s.log(fmt.Sprintf("fetched trail id=%s", code))
	return trail
}

func (s *trailServiceImpl) SearchTrails(ctx context.Context, term string) []model.Trail {
	if strings.TrimSpace(term) == "" {
		return []model.Trail{}
	}

	trails, err := s.trailsRepo.SearchTrails(ctx, term)
	if err != nil {
		return handleError(s, "searchTrails", err, []model.Trail{})
	}

	mergeAll(trails)
	if len(trails) > 0 {
		s.log(fmt.Sprintf("found trails matching \"%s\"", term))
	} else {
		s.log(fmt.Sprintf("no trails matching \"%s\"", term))
	}
	return trails
}

func (s *trailServiceImpl) CreateTrail(ctx context.Context, trail *model.Trail) *model.Trail {
	created, err := s.trailsRepo.Create(ctx, trail)
	if err != nil {
		return handleError[*model.Trail](s, "addTrail", err, nil)
	}
	if created == nil {
		err := fmt.Errorf("%w: empty response for created trail", repository.ErrMalformedPayload)
		return handleError[*model.Trail](s, "addTrail", err, nil)
	}

	created.MergeSegments()
	s.log(fmt.Sprintf("added trail w/ id=%d", created.ID))
	return created
}

func (s *trailServiceImpl) UpdateTrail(ctx context.Context, trail *model.Trail) *model.Trail {
	updated, err := s.trailsRepo.Update(ctx, trail)
	if err != nil {
		return handleError[*model.Trail](s, "updateTrail", err, nil)
	}

	if updated != nil {
		updated.MergeSegments()
	}
	s.log(fmt.Sprintf("updated trail id=%d", trail.ID))
	return updated
}

func (s *trailServiceImpl) DeleteTrail(ctx context.Context, id int) *model.Trail {
	deleted, err := s.trailsRepo.Delete(ctx, id)
	if err != nil {
		return handleError[*model.Trail](s, "deleteTrail", err, nil)
	}

	if deleted != nil {
		deleted.MergeSegments()
	}
	s.log(fmt.Sprintf("deleted trail id=%d", id))
	return deleted
}

func (s *trailServiceImpl) GetTrailDetail(ctx context.Context, code string) *model.TrailDetail {
	detail, err := s.trailsRepo.GetTrailDetail(ctx, code)
	if err != nil {
		return handleError[*model.TrailDetail](s, fmt.Sprintf("getTrailDetail id=%s", code), err, nil)
	}

	s.log(fmt.Sprintf("fetched trail details id=%s", code))
	return detail
}

// handleError 失敗した操作のエラーを記録し、フォールバック値を返す
func handleError[T any](s *trailServiceImpl, operation string, err error, fallback T) T {
	s.logger.Error("trail operation failed",
		zap.String("operation", operation),
		zap.Error(err))

	s.log(fmt.Sprintf("%s failed: %v", operation, err))
	return fallback
}

// log メッセージログにTrailServiceのメッセージを追加
func (s *trailServiceImpl) log(message string) {
	s.messages.Add(messagePrefix + message)
}

// mergeAll 呼び出し元に渡す前に全トレイルのセグメントを統合する
func mergeAll(trails []model.Trail) {
	for i := range trails {
		trails[i].MergeSegments()
	}
}
