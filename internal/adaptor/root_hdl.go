package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-master/pkg/database"
	"movie-master/pkg/utils"

	"go.uber.org/zap"
)

const livenessText = "MovieMaster Pro Server is Running"

type RootHandler struct {
	db  database.Pinger
	log *zap.Logger
}

func NewRootHandler(db database.Pinger, log *zap.Logger) *RootHandler {
	return &RootHandler{
		db:  db,
		log: log.With(zap.String("handler", "root")),
	}
}

// Index handles GET /
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.ResponseText(w, http.StatusOK, livenessText)
}

// Health handles GET /health, reporting whether the store answers a ping
func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Database unavailable")
		return
	}

	utils.ResponseText(w, http.StatusOK, "OK")
}
