package ping

import (
	"context"
	"net/http"
	"time"

	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by every store backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	store Pinger
}

func New(store Pinger) *Handler {
	return &Handler{store: store}
}

// HandlePing reports liveness and store reachability
// @Summary Ping test
// @Description Answers pong when the store is reachable
// @Tags test
// @Produce json
// @Success 200 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utils.LogError(err, "Store ping failed")
		utils.SendError(c, http.StatusServiceUnavailable, utils.KindInternal, "Store unavailable")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Ping successful", gin.H{
		"message": "pong",
	})
}
