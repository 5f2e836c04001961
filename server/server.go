package server

import (
	"net/http"
	"time"

	"scamgame/internal/auth"
	"scamgame/internal/logging"
	"scamgame/internal/metrics"
	"scamgame/internal/scenario"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderStatus is what /ready needs to know about the model client.
type ProviderStatus interface {
	Configured() bool
	ModelName() string
}

type Deps struct {
	Logger      *zap.Logger
	Scenarios   *scenario.Service
	Provider    ProviderStatus
	Diagnostics bool
	AccessKey   string
	// AllowedOrigins enables CORS for a separately hosted front-end.
	AllowedOrigins []string
}

// New builds the HTTP router.
func New(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.GinMiddleware(log), gin.Recovery())
	if len(d.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = d.AllowedOrigins
		corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", auth.AccessKeyHeader, logging.RequestIDHeader}
		corsCfg.MaxAge = 12 * time.Hour
		r.Use(cors.New(corsCfg))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if d.Provider == nil || !d.Provider.Configured() {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "provider not configured"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model": d.Provider.ModelName()})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	api.Use(auth.AccessKey(d.AccessKey))
	{
		api.POST("/ai-generate", scenario.Handler(d.Scenarios, scenario.HandlerOptions{
			Diagnostics: d.Diagnostics,
		}))
	}

	return r
}
