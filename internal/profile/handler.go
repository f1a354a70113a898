package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/auth"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/avatars"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	megabyte           = 1024 * 1024
	cacheSize          = 8 * megabyte
	profileCacheExpire = 60 // seconds
	// multipart framing on top of the image itself
	maxUploadBodySize = avatars.MaxSize + megabyte
	avatarFormField   = "avatar"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=profile_test

type usersRepo interface {
	GetByID(ctx context.Context, id int) (*auth.User, error)
	UpdateAvatar(ctx context.Context, userID int, avatar string) error
}

type statsProvider interface {
	Stats(ctx context.Context, username string) (*workouts.Stats, error)
}

type AvatarResponse struct {
	Message string `json:"message"`
	Avatar  string `json:"avatar"`
}

type Handler struct {
	users   usersRepo
	stats   statsProvider
	avatars avatars.Store
	metrics *metrics.Manager
	cache   *freecache.Cache
}

func NewHandler(
	users usersRepo,
	stats statsProvider,
	avatarStore avatars.Store,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		users:   users,
		stats:   stats,
		avatars: avatarStore,
		metrics: metricsManager,
		cache:   freecache.NewCache(cacheSize),
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	profileRouter := router.PathPrefix("/profile").Subrouter()
	profileRouter.HandleFunc("", handler.HandleGet).Methods("GET", "OPTIONS").Name("profile")
	profileRouter.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("profile-stats")
	profileRouter.HandleFunc("/upload-avatar", handler.HandleUploadAvatar).Methods("POST", "OPTIONS").Name("profile-upload-avatar")
}

func cacheKey(userID int) []byte {
	return []byte(fmt.Sprintf("profile::%d", userID))
}

// InvalidateProfile drops the cached profile of the user.
func (handler *Handler) InvalidateProfile(userID int) {
	handler.cache.Del(cacheKey(userID))
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}
	span.SetAttributes(attribute.Int("user.id", session.UserID))

	if cached, err := handler.cache.Get(cacheKey(session.UserID)); err == nil {
		log.Tracef("profile %d found in cache", session.UserID)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	user, err := handler.users.GetByID(ctx, session.UserID)
	if errors.Is(err, auth.ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get profile %d: %s", session.UserID, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal profile %d: %s", session.UserID, err)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey(session.UserID), userJson, profileCacheExpire); err != nil {
		log.Errorf("failed to cache profile %d: %s", session.UserID, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, userJson)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.stats")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	stats, err := handler.stats.Stats(ctx, session.Username)
	if err != nil {
		log.Errorf("get stats for [%s]: %s", session.Username, err)
		http.Error(w, "failed to get workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.uploadAvatar")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBodySize)
	if err := r.ParseMultipartForm(megabyte); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handler.metrics.CounterAvatarUploads.WithLabelValues("rejected").Inc()
			http.Error(w, avatars.ErrTooLarge.Error(), http.StatusBadRequest)
			return
		}
		log.Debugf("upload avatar, parse multipart form: %s", err)
		http.Error(w, "Please upload a file", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Errorf("upload avatar, remove multipart files: %s", err)
		}
	}()

	file, fileHeader, err := r.FormFile(avatarFormField)
	if err != nil {
		http.Error(w, "Please upload a file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := handler.avatars.Save(ctx, avatars.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		File:        file,
	})
	if errors.Is(err, avatars.ErrRejectedType) || errors.Is(err, avatars.ErrTooLarge) {
		handler.metrics.CounterAvatarUploads.WithLabelValues("rejected").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("save avatar for user %d: %s", session.UserID, err)
		handler.metrics.CounterAvatarUploads.WithLabelValues("error").Inc()
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	if err := handler.users.UpdateAvatar(ctx, session.UserID, avatarURL); err != nil {
		log.Errorf("update avatar for user %d: %s", session.UserID, err)
		handler.metrics.CounterAvatarUploads.WithLabelValues("error").Inc()
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	handler.InvalidateProfile(session.UserID)

	handler.metrics.CounterAvatarUploads.WithLabelValues("ok").Inc()
	log.Debugf("user %d avatar updated: %s", session.UserID, avatarURL)
	pkg.WriteJSON(w, AvatarResponse{
		Message: "Profile picture updated successfully",
		Avatar:  avatarURL,
	}, http.StatusOK)
}
