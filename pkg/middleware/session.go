package middleware

import (
	"net/http"

	"movie-api/pkg/database"

	"go.uber.org/zap"
)

// DBSession gives every request its own database session. The connection is
// only checked out if the handler touches the store, and is returned when
// the handler exits, including on panic.
func DBSession(opener database.SessionOpener, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := opener.NewSession()
			defer func() {
				if err := sess.Close(); err != nil {
					logger.Warn("Failed to release database connection",
						zap.Error(err),
						zap.String("path", r.URL.Path),
					)
				}
			}()

			next.ServeHTTP(w, r.WithContext(database.WithSession(r.Context(), sess)))
		})
	}
}
