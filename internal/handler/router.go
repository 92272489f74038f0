package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Trail-App/internal/application"
	"Trail-App/internal/requestctx"
)

// NewRouter ginルーターにAPIエンドポイントを登録する
func NewRouter(trailService application.TrailService, messages application.MessageService, logger *zap.Logger) *gin.Engine {
	trailsHandler := NewTrailsHandler(trailService)
	dashboardHandler := NewDashboardHandler(trailService)
	messagesHandler := NewMessagesHandler(messages)

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Trail-App"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard", dashboardHandler.GetDashboard)

		v1.GET("/cities", trailsHandler.ListCities)
		v1.GET("/cities/:code/trails", trailsHandler.ListTrails)

		v1.GET("/trails", trailsHandler.FindTrails)
		v1.POST("/trails", trailsHandler.CreateTrail)
		v1.PUT("/trails", trailsHandler.UpdateTrail)
		v1.DELETE("/trails/:id", trailsHandler.DeleteTrail)

		v1.GET("/trail/:code", trailsHandler.GetTrail)
		v1.GET("/trail/:code/detail", trailsHandler.GetTrailDetail)

		v1.GET("/messages", messagesHandler.ListMessages)
		v1.DELETE("/messages", messagesHandler.ClearMessages)
	}

	return r
}

// RequestID リクエストIDをcontextとレスポンスヘッダーに設定するミドルウェア
// クライアントが X-Request-ID を送ってきた場合はそれを引き継ぐ
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestctx.HeaderRequestID)
		if id == "" {
			id = requestctx.RequestID(c.Request.Context())
		}

		c.Request = c.Request.WithContext(requestctx.WithRequestID(c.Request.Context(), id))
		c.Header(requestctx.HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog リクエストごとにzapでアクセスログを出力するミドルウェア
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.String("request_id", c.Writer.Header().Get(requestctx.HeaderRequestID)))
	}
}
