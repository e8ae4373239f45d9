package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-ads-board/internal/core/auth"
	"go-ads-board/internal/transport/http/handler"
	mdw "go-ads-board/internal/transport/http/middleware"
)

// NewAPIEngine 公共 API：注册/登录 + 广告 CRUD。
// 读接口不挂鉴权中间件，带垃圾 token 也能访问；写接口统一 Bearer。
func NewAPIEngine(l *zap.Logger, authH *handler.AuthHandler, adH *handler.AdHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/register", authH.Register)
	r.POST("/auth/login", authH.Login)

	// 公共读
	r.GET("/ads", adH.List)
	r.GET("/ads/:id", adH.Get)

	// 写接口要求登录；owner 校验在 service 层
	ads := r.Group("/ads")
	ads.Use(mdw.RequireAuth(jwter))
	{
		ads.POST("", adH.Create)
		ads.PATCH("/:id", adH.Update)
		ads.PUT("/:id", adH.Update) // 全量替换是部分更新的特例
		ads.DELETE("/:id", adH.Delete)
	}

	return r
}
