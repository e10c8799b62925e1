// ABOUTME: Panic recovery middleware for the API.
// ABOUTME: Logs the panic with its stack and answers with the internal_error envelope.

package logging

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	apierrors "github.com/2389/crmseed/internal/errors"
)

// Recoverer turns a panicking handler into a 500 response. http.ErrAbortHandler
// is re-raised so net/http can drop the connection as it expects.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("panic in handler",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				apierrors.WriteError(w, http.StatusInternalServerError, apierrors.ErrInternal,
					fmt.Sprintf("internal error serving %s", r.URL.Path))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
