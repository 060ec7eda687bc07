package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
	"github.com/pageza/healthshop/backend/internal/service"
	"github.com/pageza/healthshop/backend/internal/types"
)

// ReportExporter archives an insights dashboard and returns a download link.
type ReportExporter interface {
	Export(ctx context.Context, userID uuid.UUID, insights *types.HealthInsights) (*types.ExportedReport, error)
}

// InsightsServices groups the engine components behind /ai.
type InsightsServices struct {
	HealthScore     service.IHealthScoreService
	PurchasePattern service.IPurchasePatternService
	Interactions    service.IInteractionService
	Comparison      service.IComparisonService
	Dosage          service.IDosageService
	Insights        service.IInsightsService
	Recommendations service.IRecommendationService
}

// ServicesFromEngine exposes an engine's components to the handler.
func ServicesFromEngine(e *service.Engine) InsightsServices {
	return InsightsServices{
		HealthScore:     e.HealthScore,
		PurchasePattern: e.PurchasePattern,
		Interactions:    e.Interactions,
		Comparison:      e.Comparison,
		Dosage:          e.Dosage,
		Insights:        e.Insights,
		Recommendations: e.Recommendations,
	}
}

// InsightsHandler serves the /ai endpoints.
type InsightsHandler struct {
	svc      InsightsServices
	cache    cache.Cache
	metrics  *metrics.Metrics
	exporter ReportExporter
	log      *logger.Logger
}

// NewInsightsHandler creates a new InsightsHandler. exporter may be nil, in
// which case the export route is not registered.
func NewInsightsHandler(svc InsightsServices, c cache.Cache, m *metrics.Metrics, exporter ReportExporter, log *logger.Logger) *InsightsHandler {
	return &InsightsHandler{
		svc:      svc,
		cache:    c,
		metrics:  m,
		exporter: exporter,
		log:      log.With("handler", "insights"),
	}
}

func (h *InsightsHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.GET("/health-score", h.GetHealthScore)
		ai.GET("/purchase-insights", h.GetPurchaseInsights)
		ai.POST("/interaction-check", h.CheckInteractions)
		ai.POST("/compare", h.CompareProducts)
		ai.GET("/dosage/:productId", h.GetDosage)
		ai.GET("/health-insights", h.GetHealthInsights)
		ai.GET("/nutrition-gaps", h.GetNutritionGaps)
		ai.GET("/daily-tips", h.GetDailyTips)
		ai.POST("/chat", h.Chat)
		if h.exporter != nil {
			ai.POST("/health-insights/export", h.ExportHealthInsights)
		}
	}
}

func (h *InsightsHandler) GetHealthScore(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("health_score", time.Now(), &err)

	score, err := h.svc.HealthScore.CalculateForUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *InsightsHandler) GetPurchaseInsights(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("purchase_insights", time.Now(), &err)

	insights, err := h.svc.PurchasePattern.Analyze(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

func (h *InsightsHandler) CheckInteractions(c *gin.Context) {
	var req types.InteractionCheckRequest
	if !bindJSON(c, &req) {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("interaction_check", time.Now(), &err)

	report, err := h.svc.Interactions.Check(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *InsightsHandler) CompareProducts(c *gin.Context) {
	var req types.ComparisonRequest
	if !bindJSON(c, &req) {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("compare", time.Now(), &err)

	comparison, err := h.svc.Comparison.Compare(c.Request.Context(), req.ProductIDs)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

func (h *InsightsHandler) GetDosage(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := productParam(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("dosage", time.Now(), &err)

	dosage, err := h.svc.Dosage.Calculate(c.Request.Context(), productID, &userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dosage)
}

func (h *InsightsHandler) GetHealthInsights(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	insights, err := h.dashboard(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// ExportHealthInsights archives the caller's dashboard to object storage.
func (h *InsightsHandler) ExportHealthInsights(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	insights, err := h.dashboard(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}
	report, err := h.exporter.Export(ctx, userID, insights)
	if err != nil {
		fail(c, err)
		return
	}
	h.metrics.ReportsExported.Inc()
	c.JSON(http.StatusCreated, report)
}

func (h *InsightsHandler) dashboard(ctx context.Context, userID uuid.UUID) (insights *types.HealthInsights, err error) {
	defer h.metrics.ObserveOperation("health_insights", time.Now(), &err)
	return cachedPayload(ctx, h.cache, h.metrics, h.log, "insights", cache.InsightsKey(userID), func() (*types.HealthInsights, error) {
		return h.svc.Insights.Insights(ctx, userID)
	})
}

func (h *InsightsHandler) GetNutritionGaps(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("nutrition_gaps", time.Now(), &err)

	gaps, err := h.svc.Insights.NutritionGaps(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gaps)
}

func (h *InsightsHandler) GetDailyTips(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("daily_tips", time.Now(), &err)

	tips, err := h.svc.Insights.DailyTips(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (h *InsightsHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("chat", time.Now(), &err)

	resp, err := h.svc.Recommendations.Chat(c.Request.Context(), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
