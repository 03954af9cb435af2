package adaptor

import (
	"context"
	"net/http"
	"time"

	"movie-api/pkg/database"
	"movie-api/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.DBIface
	log *zap.Logger
}

func NewHealthHandler(db database.DBIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
