package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/auth"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type sessionChecker interface {
	Check(ctx context.Context, token string) (*auth.Session, error)
}

type AuthMiddlewareHandler struct {
	loginChecker           sessionChecker
	// "METHOD path"
	allowedRoutes          map[string]bool
	allowedGetPathPrefixes []string
}

func NewAuthMiddlewareHandler(loginChecker sessionChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedRoutes: map[string]bool{
			"GET /":  true,
			"HEAD /": true,

			// auth handler:
			"POST /api/auth/register": true,
			"POST /api/auth/login":    true,
			"POST /api/auth/google":   true,
			"POST /api/auth/facebook": true,

			// workouts handler:
			"GET /api/exercises":          true,
			"POST /api/workouts/generate": true,
		},
		allowedGetPathPrefixes: []string{
			"/uploads/avatars/",
		},
	}
}

func (h *AuthMiddlewareHandler) routeIsAlwaysAllowed(method, path string) bool {
	if h.allowedRoutes[method+" "+path] {
		return true
	}
	if method != http.MethodGet && method != http.MethodHead {
		return false
	}
	for _, prefix := range h.allowedGetPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// bearerToken reads the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthCheck rejects requests to protected paths without a live session,
// and puts the session into the request context otherwise.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions || h.routeIsAlwaysAllowed(r.Method, r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := bearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			session, err := h.loginChecker.Check(ctx, authToken)
			if errors.Is(err, auth.ErrSessionNotFound) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}
			if err != nil {
				log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-logged-err")
				span.RecordError(err)
				return
			}

			span.SetAttributes(attribute.Int("user.id", session.UserID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), session)))
		})
	}
}
