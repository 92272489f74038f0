package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Trail-App/internal/application"
	"Trail-App/internal/domain/model"
	"Trail-App/internal/requestctx"
)

// stubTrailService ハンドラーテスト用のTrailService
type stubTrailService struct {
	mu sync.Mutex

	cities  []model.City
	trails  []model.Trail
	trail   *model.Trail
	detail  *model.TrailDetail
	saved   *model.Trail
	queries []model.TrailQuery
	terms   []string
	deleted []int
}

func (s *stubTrailService) ListCities(ctx context.Context) []model.City {
	return s.cities
}

func (s *stubTrailService) ListTrails(ctx context.Context, query model.TrailQuery) []model.Trail {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, query)
	return append([]model.Trail(nil), s.trails...)
}

func (s *stubTrailService) GetTrailLenient(ctx context.Context, id int) *model.Trail {
	return s.trail
}

func (s *stubTrailService) GetTrailStrict(ctx context.Context, code string) *model.Trail {
	return s.trail
}

func (s *stubTrailService) SearchTrails(ctx context.Context, term string) []model.Trail {
	s.terms = append(s.terms, term)
	return []model.Trail{}
}

func (s *stubTrailService) CreateTrail(ctx context.Context, trail *model.Trail) *model.Trail {
	return s.saved
}

func (s *stubTrailService) UpdateTrail(ctx context.Context, trail *model.Trail) *model.Trail {
	return s.saved
}

func (s *stubTrailService) DeleteTrail(ctx context.Context, id int) *model.Trail {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTrailService) GetTrailDetail(ctx context.Context, code string) *model.TrailDetail {
	return s.detail
}

func setupRouter(svc application.TrailService, messages application.MessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if messages == nil {
		messages = application.NewMessageService()
	}
	return NewRouter(svc, messages, zap.NewNop())
}

func perform(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(&stubTrailService{}, nil)

	w := perform(r, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestctx.HeaderRequestID))
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := setupRouter(&stubTrailService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestctx.HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestctx.HeaderRequestID))
}

func TestListTrails_BindsQuery(t *testing.T) {
	svc := &stubTrailService{}
	r := setupRouter(svc, nil)

	w := perform(r, http.MethodGet, "/api/v1/cities/SF/trails?type=2&sort=distance&round_trip=true", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.queries, 1)
	assert.Equal(t, model.TrailQuery{
		CityCode:      "SF",
		Type:          2,
		SortField:     "distance",
		Direction:     model.SortAsc,
		RoundTripOnly: true,
	}, svc.queries[0])
}

func TestListTrails_InvalidType(t *testing.T) {
	r := setupRouter(&stubTrailService{}, nil)

	w := perform(r, http.MethodGet, "/api/v1/cities/SF/trails?type=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFindTrails(t *testing.T) {
	t.Run("idで見つからない場合は404", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodGet, "/api/v1/trails?id=99", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("idが数値でない場合は400", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodGet, "/api/v1/trails?id=x", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nameで検索", func(t *testing.T) {
		svc := &stubTrailService{}
		r := setupRouter(svc, nil)

		w := perform(r, http.MethodGet, "/api/v1/trails?name=lake", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"lake"}, svc.terms)
		assert.JSONEq(t, `{"trails":[]}`, w.Body.String())
	})
}

func TestGetTrail(t *testing.T) {
	t.Run("種別名と周回判定を含む", func(t *testing.T) {
		trail := &model.Trail{ID: 1, Code: "LOOP", Name: "Loop", Type: model.TrailTypeHiking,
			Segments: []model.Segment{{Distance: 1, Points: orb.LineString{{0, 0}, {1, 1}, {0, 0}}}}}
		r := setupRouter(&stubTrailService{trail: trail}, nil)

		w := perform(r, http.MethodGet, "/api/v1/trail/LOOP", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Trail     model.Trail `json:"trail"`
			TypeName  string      `json:"type_name"`
			RoundTrip bool        `json:"round_trip"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Loop", body.Trail.Name)
		assert.Equal(t, model.GetTrailTypeName(model.TrailTypeHiking), body.TypeName)
		assert.True(t, body.RoundTrip)
	})

	t.Run("見つからない場合は404", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodGet, "/api/v1/trail/NOPE", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetTrailDetail(t *testing.T) {
	r := setupRouter(&stubTrailService{detail: &model.TrailDetail{ID: 1, Code: "LOOP", Description: "lake"}}, nil)

	w := perform(r, http.MethodGet, "/api/v1/trail/LOOP/detail", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"description":"lake"`)
}

func TestSaveTrail(t *testing.T) {
	payload := []byte(`{"code":"NEW","name":"New","city_code":"SF","type":1}`)

	t.Run("作成成功は201", func(t *testing.T) {
		r := setupRouter(&stubTrailService{saved: &model.Trail{ID: 5, Name: "New"}}, nil)

		w := perform(r, http.MethodPost, "/api/v1/trails", payload)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("作成失敗は502", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodPost, "/api/v1/trails", payload)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("不正なJSONは400", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodPut, "/api/v1/trails", []byte(`{"name":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("更新成功は200", func(t *testing.T) {
		r := setupRouter(&stubTrailService{saved: &model.Trail{ID: 5, Name: "New"}}, nil)

		w := perform(r, http.MethodPut, "/api/v1/trails", payload)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDeleteTrail(t *testing.T) {
	svc := &stubTrailService{}
	r := setupRouter(svc, nil)

	w := perform(r, http.MethodDelete, "/api/v1/trails/7", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []int{7}, svc.deleted)

	w = perform(r, http.MethodDelete, "/api/v1/trails/seven", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard(t *testing.T) {
	t.Run("都市と上位トレイルを返す", func(t *testing.T) {
		svc := &stubTrailService{
			cities: []model.City{{ID: 1, Name: "San Francisco", Code: "SF", Active: true}},
			trails: []model.Trail{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}},
		}
		r := setupRouter(svc, nil)

		w := perform(r, http.MethodGet, "/api/v1/dashboard?city=SF&type=2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Cities, 1)
		assert.Len(t, body.TopTrails, dashboardTopTrails)

		require.Len(t, svc.queries, 1)
		assert.Equal(t, "distance", svc.queries[0].SortField)
		assert.Equal(t, model.SortDesc, svc.queries[0].Direction)
		assert.Equal(t, 2, svc.queries[0].Type)
	})

	t.Run("cityが無い場合は400", func(t *testing.T) {
		r := setupRouter(&stubTrailService{}, nil)

		w := perform(r, http.MethodGet, "/api/v1/dashboard", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMessages(t *testing.T) {
	messages := application.NewMessageService()
	messages.Add("TrailService: fetched cities")
	r := setupRouter(&stubTrailService{}, messages)

	w := perform(r, http.MethodGet, "/api/v1/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"messages":["TrailService: fetched cities"]}`, w.Body.String())

	w = perform(r, http.MethodDelete, "/api/v1/messages", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, messages.Messages())
}
