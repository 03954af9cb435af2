package wire

import (
	"movie-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireActor(r chi.Router, actorHandler *adaptor.ActorHandler) {
	r.Delete("/actors/{id:[0-9]+}", actorHandler.DeleteActor) // DELETE /actors/{id}
}
