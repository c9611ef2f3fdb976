package routes

import (
	_ "detailing_crm/docs"
	"detailing_crm/internal/adapter/http/handlers"
	"detailing_crm/internal/infrastructure/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathPing       = "/ping"
	PathVisits     = "/visits"
	PathPayments   = "/payments"
	PathPricing    = "/pricing"
	PathSignatures = "/signatures"
	PathProtocols  = "/protocols"
)

// Handlers groups the HTTP handlers served under /v1. A nil handler leaves its
// routes out.
type Handlers struct {
	Visit     *handlers.VisitHandler
	Payment   *handlers.VisitPaymentHandler
	Pricing   *handlers.PricingHandler
	Signature *handlers.SignatureHandler
}

// NewRouter builds the engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(h Handlers, logger *zap.Logger, httpMetrics *metrics.HTTP) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger.Named("http"), httpMetrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	if h.Visit != nil {
		addVisitRoutes(v1, h.Visit, h.Payment)
	}
	if h.Pricing != nil {
		addPricingRoutes(v1, h.Pricing)
	}
	if h.Signature != nil {
		addSignatureRoutes(v1, h.Signature)
	}
	return router
}

// NewServer wraps the router in a server listening on port. The caller owns
// ListenAndServe and Shutdown.
func NewServer(port int, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, httpMetrics *metrics.HTTP) {
	router.Use(requestLogger(logger))
	router.Use(requestMetrics(httpMetrics))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
