package middleware

import (
	"slices"

	"refreshing-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCORSMiddleware applies the configured policy to every route except
// skipPaths, which set their own headers.
func NewCORSMiddleware(cfg config.CORSConfig, logger *zap.Logger, skipPaths ...string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	logger.Info("CORS middleware initialized", zap.Strings("allow_origins", cfg.AllowOrigins))
	handle := cors.New(corsCfg)
	return func(c *gin.Context) {
		if slices.Contains(skipPaths, c.FullPath()) {
			c.Next()
			return
		}
		handle(c)
	}
}
