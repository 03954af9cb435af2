package adaptor

import (
	"net/http"
	"strconv"

	"movie-api/internal/usecase"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const msgActorDeleted = "Actor deleted successfully"

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// DeleteActor handles DELETE /actors/{id}. It answers with the same success
// message whether or not the actor existed.
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		h.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", actorID))
		utils.ResponseInternalError(w, msgInternalServerError)
		return
	}

	utils.ResponseSuccess(w, msgActorDeleted)
}
