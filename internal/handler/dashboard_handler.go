package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"Trail-App/internal/application"
	"Trail-App/internal/domain/model"
)

// dashboardTopTrails ダッシュボードに表示するトレイル数
const dashboardTopTrails = 4

// DashboardQuery ダッシュボードの表示条件
type DashboardQuery struct {
	City string `form:"city" binding:"required"`
	Type int    `form:"type"`
}

// DashboardResponse ダッシュボードのレスポンス
type DashboardResponse struct {
	Cities    []model.City  `json:"cities"`
	TopTrails []model.Trail `json:"top_trails"`
}

// DashboardHandler ダッシュボード表示用のHTTPハンドラー
type DashboardHandler struct {
	trailService application.TrailService
}

// NewDashboardHandler DashboardHandlerの新しいインスタンスを作成
func NewDashboardHandler(trailService application.TrailService) *DashboardHandler {
	return &DashboardHandler{
		trailService: trailService,
	}
}

// GetDashboard GET /dashboard?city=&type= - 都市一覧と距離の長いトレイルを並行取得
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "city parameter is required",
		})
		return
	}

	var response DashboardResponse
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		response.Cities = h.trailService.ListCities(ctx)
		return nil
	})
	g.Go(func() error {
		trails := h.trailService.ListTrails(ctx, model.TrailQuery{
			CityCode:  query.City,
			Type:      query.Type,
			SortField: "distance",
			Direction: model.SortDesc,
		})
		if len(trails) > dashboardTopTrails {
			trails = trails[:dashboardTopTrails]
		}
		response.TopTrails = trails
		return nil
	})

	// ゲートウェイはエラーを返さないため、Waitは常にnil
	_ = g.Wait()

	c.JSON(http.StatusOK, response)
}
