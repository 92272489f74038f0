package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Trail-App/internal/application"
	"Trail-App/internal/domain/model"
)

// TrailsHandler トレイルに関するHTTPハンドラー
type TrailsHandler struct {
	trailService application.TrailService
}

// NewTrailsHandler TrailsHandlerの新しいインスタンスを作成
func NewTrailsHandler(trailService application.TrailService) *TrailsHandler {
	return &TrailsHandler{
		trailService: trailService,
	}
}

// ListCities GET /cities - 有効な都市の一覧
func (h *TrailsHandler) ListCities(c *gin.Context) {
	cities := h.trailService.ListCities(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// ListTrails GET /cities/:code/trails - 都市のトレイル一覧（絞り込み・並び替え）
func (h *TrailsHandler) ListTrails(c *gin.Context) {
	var query model.TrailQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid query parameters: " + err.Error(),
		})
		return
	}
	query.CityCode = c.Param("code")
	if query.Direction == "" {
		query.Direction = model.SortAsc
	}

	trails := h.trailService.ListTrails(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"trails": trails})
}

// FindTrails GET /trails?id=N または GET /trails?name=T
// idが指定されていればIDで検索し、それ以外は名前で検索する
func (h *TrailsHandler) FindTrails(c *gin.Context) {
	if rawID, ok := c.GetQuery("id"); ok {
		id, err := strconv.Atoi(rawID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid id value",
			})
			return
		}

		trail := h.trailService.GetTrailLenient(c.Request.Context(), id)
		if trail == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "not_found",
				"message": "Trail not found",
			})
			return
		}
		c.JSON(http.StatusOK, trail)
		return
	}

	trails := h.trailService.SearchTrails(c.Request.Context(), c.Query("name"))
	c.JSON(http.StatusOK, gin.H{"trails": trails})
}

// GetTrail GET /trail/:code - コードでトレイルを取得
func (h *TrailsHandler) GetTrail(c *gin.Context) {
	trail := h.trailService.GetTrailStrict(c.Request.Context(), c.Param("code"))
	if trail == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Trail not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trail":      trail,
		"type_name":  model.GetTrailTypeName(trail.Type),
		"round_trip": trail.IsRoundTrip(),
	})
}

// GetTrailDetail GET /trail/:code/detail - トレイル詳細を取得
func (h *TrailsHandler) GetTrailDetail(c *gin.Context) {
	detail := h.trailService.GetTrailDetail(c.Request.Context(), c.Param("code"))
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "Trail detail not found",
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateTrail POST /trails - トレイルの作成
func (h *TrailsHandler) CreateTrail(c *gin.Context) {
	var trail model.Trail
	if err := c.ShouldBindJSON(&trail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	created := h.trailService.CreateTrail(c.Request.Context(), &trail)
	if created == nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to create trail",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateTrail PUT /trails - トレイルの更新
func (h *TrailsHandler) UpdateTrail(c *gin.Context) {
	var trail model.Trail
	if err := c.ShouldBindJSON(&trail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	updated := h.trailService.UpdateTrail(c.Request.Context(), &trail)
	if updated == nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream_error",
			"message": "Failed to update trail",
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTrail DELETE /trails/:id - トレイルの削除
// 削除結果はメッセージログで確認する
func (h *TrailsHandler) DeleteTrail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid id value",
		})
		return
	}

	h.trailService.DeleteTrail(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}
