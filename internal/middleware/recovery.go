package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500 response, reports it and keeps the server running.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
				}).Errorf("handler panic: %v\n%s", recovered, debug.Stack())
				if hub := sentry.GetHubFromContext(req.Context()); hub != nil {
					hub.Recover(recovered)
				} else {
					sentry.CurrentHub().Recover(recovered)
				}
				metricsManager.CounterHandleRequestPanic.Inc()

				http.Error(w, "Server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}
