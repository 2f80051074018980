package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"refreshing-booking/internal/handler/api"
	"refreshing-booking/internal/handler/middleware"
	"refreshing-booking/internal/pkg/config"
)

const SendEmailPath = "/api/send-email"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *zap.Logger, bookingHandler *api.BookingHandler, draftHandler *api.DraftHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, logger, bookingHandler, draftHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewLogger(logger).LoggingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger, SendEmailPath))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, logger *zap.Logger, bookingHandler *api.BookingHandler, draftHandler *api.DraftHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var limited []gin.HandlerFunc
	if cfg.RateLimit.Enabled() {
		limited = append(limited, middleware.NewRateLimiter(cfg.RateLimit, logger).Middleware())
	}

	// every method lands here; the handler answers OPTIONS and 405 itself
	addRoutes(&engine.RouterGroup, []route{
		{Method: "*", Path: SendEmailPath, Handler: bookingHandler.SendEmailDispatch, Mw: limited},
	})

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: draftHandler.Availability},
		})

		draft := apiGroup.Group("/booking/draft")
		{
			addRoutes(draft, []route{
				{Method: http.MethodGet, Path: "", Handler: draftHandler.New},
				{Method: http.MethodPost, Path: "/validate/:step", Handler: draftHandler.Validate},
				{Method: http.MethodPost, Path: "/advance", Handler: draftHandler.Advance},
				{Method: http.MethodPost, Path: "/retreat", Handler: draftHandler.Retreat},
				{Method: http.MethodPost, Path: "/quote", Handler: draftHandler.Quote},
				{Method: http.MethodPost, Path: "/submission", Handler: draftHandler.Submission},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
