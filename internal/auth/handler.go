package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type identityService interface {
	Register(ctx context.Context, username, email, password string) (*User, *Session, error)
	Login(ctx context.Context, email, password string) (*User, *Session, error)
	LinkOrCreateOAuth(ctx context.Context, profile OAuthProfile) (*User, *Session, error)
}

type sessionTerminator interface {
	Logout(ctx context.Context, token string) error
}

type googleTokenVerifier interface {
	Verify(ctx context.Context, credential string) (OAuthProfile, error)
}

type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type Handler struct {
	identity       identityService
	sessions       sessionTerminator
	googleVerifier googleTokenVerifier
	metrics        *metrics.Manager
}

// NewHandler creates the auth handler. googleVerifier may be nil, then Google sign-in
// only accepts the plain profile fields sent by the client.
func NewHandler(
	identity identityService,
	sessions sessionTerminator,
	googleVerifier googleTokenVerifier,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		identity:       identity,
		sessions:       sessions,
		googleVerifier: googleVerifier,
		metrics:        metricsManager,
	}
}

// SetupRoutes registers the /auth endpoints; middlewares (e.g. rate limiting) apply to all of them.
func (handler *Handler) SetupRoutes(router *mux.Router, middlewares ...mux.MiddlewareFunc) {
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("auth-register")
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("auth-login")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("auth-logout")
	authRouter.HandleFunc("/google", handler.HandleGoogle).Methods("POST", "OPTIONS").Name("auth-google")
	authRouter.HandleFunc("/facebook", handler.HandleFacebook).Methods("POST", "OPTIONS").Name("auth-facebook")
	authRouter.Use(middlewares...)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, session, err := handler.identity.Register(ctx, req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrInvalidUserData):
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	case errors.Is(err, ErrUsernameTaken):
		http.Error(w, "Username already taken", http.StatusBadRequest)
		return
	case errors.Is(err, pkg.ErrPasswordTooLong):
		http.Error(w, "password must be at most 72 bytes", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("register user [%s]: %s", req.Username, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRegistrations.Inc()
	span.SetAttributes(attribute.Int("user.id", user.ID))
	pkg.WriteJSON(w, AuthResponse{
		Message: "User registered successfully",
		Token:   session.Token,
		User:    user,
	}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, session, err := handler.identity.Login(ctx, req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		log.Tracef("failed login attempt for: %s", req.Email)
		handler.metrics.CounterLogins.WithLabelValues("password", "invalid").Inc()
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("login [%s]: %s", req.Email, err)
		handler.metrics.CounterLogins.WithLabelValues("password", "error").Inc()
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogins.WithLabelValues("password", "ok").Inc()
	pkg.WriteJSON(w, AuthResponse{
		Token: session.Token,
		User:  user,
	}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	session, ok := SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.sessions.Logout(ctx, session.Token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout [%s]: %s", session.Username, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("logout for [%s] success", session.Username)
	pkg.WriteTextResponseOK(w, "logged-out")
}

type oauthRequest struct {
	// Credential is a Google Sign-In ID token.
	Credential string `json:"credential"`
	GoogleID   string `json:"googleId"`
	FacebookID string `json:"facebookId"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
}

func (handler *Handler) HandleGoogle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.google")
	defer span.End()

	var req oauthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("google auth, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile := OAuthProfile{
		Provider:   ProviderGoogle,
		ProviderID: req.GoogleID,
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
	}
	if req.Credential != "" {
		if handler.googleVerifier == nil {
			http.Error(w, "google sign-in not configured", http.StatusBadRequest)
			return
		}
		verified, err := handler.googleVerifier.Verify(ctx, req.Credential)
		if err != nil {
			log.Warnf("google auth, verify credential: %s", err)
			handler.metrics.CounterLogins.WithLabelValues(string(ProviderGoogle), "invalid").Inc()
			http.Error(w, "invalid google credential", http.StatusUnauthorized)
			return
		}
		profile = verified
	}

	handler.oauth(ctx, w, profile)
}

func (handler *Handler) HandleFacebook(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.facebook")
	defer span.End()

	var req oauthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("facebook auth, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	handler.oauth(ctx, w, OAuthProfile{
		Provider:   ProviderFacebook,
		ProviderID: req.FacebookID,
		Email:      req.Email,
		Name:       req.Name,
		Avatar:     req.Avatar,
	})
}

func (handler *Handler) oauth(ctx context.Context, w http.ResponseWriter, profile OAuthProfile) {
	provider := string(profile.Provider)
	user, session, err := handler.identity.LinkOrCreateOAuth(ctx, profile)
	if errors.Is(err, ErrInvalidUserData) {
		handler.metrics.CounterLogins.WithLabelValues(provider, "invalid").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("%s auth: %s", provider, err)
		handler.metrics.CounterLogins.WithLabelValues(provider, "error").Inc()
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterLogins.WithLabelValues(provider, "ok").Inc()
	pkg.WriteJSON(w, AuthResponse{
		Token: session.Token,
		User:  user,
	}, http.StatusOK)
}
