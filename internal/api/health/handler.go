package health

import (
	"net/http"
	"time"

	"vinyl-api/database"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store     *store.Store
	AutoReset bool
}

type Response struct {
	Status             string      `json:"status"`
	StartedAt          string      `json:"startedAt"`
	UptimeSeconds      int64       `json:"uptimeSeconds"`
	AutoReset          bool        `json:"autoReset"`
	NextResetInSeconds *int64      `json:"nextResetInSeconds"`
	Counts             store.Stats `json:"counts"`
}

// Health reports uptime from the store's creation instant. The next reset
// countdown uses the same origin, so it ignores manual resets.
func (h *Handler) Health(c *gin.Context) {
	now := h.Store.Now()
	created := h.Store.CreatedAt()

	resp := Response{
		Status:        "ok",
		StartedAt:     created.UTC().Format(time.RFC3339),
		UptimeSeconds: int64(now.Sub(created) / time.Second),
		AutoReset:     h.AutoReset,
		Counts:        h.Store.Stats(),
	}
	if h.AutoReset {
		next := int64(database.NextResetIn(created, now, database.ResetInterval) / time.Second)
		resp.NextResetInSeconds = &next
	}
	c.JSON(http.StatusOK, resp)
}
