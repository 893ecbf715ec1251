package admin

import (
	"net/http"

	"vinyl-api/config"
	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Store  *store.Store
	Loader store.Loader
	Logger *logrus.Logger
}

type ResetResponse struct {
	Message string      `json:"message"`
	Stats   store.Stats `json:"stats"`
}

// Reset throws away every record and reloads the bootstrap data. Tokens
// issued before the reset keep working only while their user id still
// exists in the new state.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.Store.Reset(h.Loader); err != nil {
		config.LogError(h.Logger, "admin", "Reset", "manual reset", nil, err)
		respond.Error(c, err)
		return
	}
	stats := h.Store.Stats()
	h.Logger.WithField("stats", stats).Info("store reset by admin")
	c.JSON(http.StatusOK, ResetResponse{Message: "Store reset to bootstrap state", Stats: stats})
}

func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Stats())
}
