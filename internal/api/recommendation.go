package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
	"github.com/pageza/healthshop/backend/internal/service"
	"github.com/pageza/healthshop/backend/internal/types"
)

// RecommendationHandler serves product recommendations and symptom search.
type RecommendationHandler struct {
	svc     service.IRecommendationService
	cache   cache.Cache
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(svc service.IRecommendationService, c cache.Cache, m *metrics.Metrics, log *logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		svc:     svc,
		cache:   c,
		metrics: m,
		log:     log.With("handler", "recommendation"),
	}
}

func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.GetRecommendations)
	router.GET("/recommendations/product/:productId/frequently-bought-together", h.GetFrequentlyBoughtTogether)
	router.POST("/chat/symptoms", h.SearchBySymptoms)
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	var err error
	defer h.metrics.ObserveOperation("recommendations", time.Now(), &err)

	recs, err := cachedPayload(ctx, h.cache, h.metrics, h.log, "recommendations", cache.RecommendationsKey(userID), func() (*types.Recommendations, error) {
		return h.svc.Recommendations(ctx, userID)
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (h *RecommendationHandler) GetFrequentlyBoughtTogether(c *gin.Context) {
	productID, ok := productParam(c)
	if !ok {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("frequently_bought_together", time.Now(), &err)

	products, err := h.svc.FrequentlyBoughtTogether(c.Request.Context(), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *RecommendationHandler) SearchBySymptoms(c *gin.Context) {
	var req types.SymptomSearchRequest
	if !bindJSON(c, &req) {
		return
	}
	var err error
	defer h.metrics.ObserveOperation("symptom_search", time.Now(), &err)

	result, err := h.svc.SymptomSearch(c.Request.Context(), req.SymptomDescription)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
