package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/service"
	"github.com/pageza/healthshop/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IHealthProfileService
	cache          cache.Cache
	log            *logger.Logger
}

func NewProfileHandler(profileService service.IHealthProfileService, c cache.Cache, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		cache:          c,
		log:            log.With("handler", "profile"),
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/user/health-profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile saves the profile and drops the cached payloads derived
// from it.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req types.HealthProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	profile, err := h.profileService.Update(ctx, userID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.cache.Delete(ctx, cache.UserKeys(userID)...); err != nil {
		h.log.Warn("failed to invalidate cached insights", "user_id", userID, "error", err)
	}
	c.JSON(http.StatusOK, profile)
}
