package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/auth"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/catalog"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/pulse"
	"github.com/JustRob12/HomeWorkoutGenerator/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Create(ctx context.Context, username string, generated generator.Workout) (*Workout, error)
	UpdateStatus(ctx context.Context, id string, to Status, bpm int) (*Workout, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, username string) ([]Workout, error)
	ListActive(ctx context.Context, username string) ([]Workout, error)
	History(ctx context.Context, username string) ([]Workout, error)
	PulseHistory(ctx context.Context, username string) ([]PulseRecord, error)
}

type GenerateRequest struct {
	Level       string   `json:"level"`
	BMI         *float64 `json:"bmi,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	TargetAreas []string `json:"targetAreas"`
}

type CreateRequest struct {
	Username string            `json:"username"`
	Workout  generator.Workout `json:"workout"`
}

type StatusRequest struct {
	Status    string `json:"status"`
	PulseRate *int   `json:"pulseRate,omitempty"`
	// RecentPulseRate is the name older clients send the pulse under.
	RecentPulseRate *int `json:"recentPulseRate,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service   workoutsService
	generator *generator.Generator
	catalog   *catalog.Catalog
	metrics   *metrics.Manager
}

func NewHandler(
	service workoutsService,
	gen *generator.Generator,
	cat *catalog.Catalog,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:   service,
		generator: gen,
		catalog:   cat,
		metrics:   metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/exercises", handler.HandleExercises).Methods("GET", "OPTIONS").Name("exercises")

	workoutsRouter := router.PathPrefix("/workouts").Subrouter()
	workoutsRouter.HandleFunc("/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("workouts-generate")
	workoutsRouter.HandleFunc("", handler.HandleCreate).Methods("POST", "OPTIONS").Name("workouts-create")
	workoutsRouter.HandleFunc("/{id}/status", handler.HandleUpdateStatus).Methods("PATCH", "OPTIONS").Name("workouts-status")
	workoutsRouter.HandleFunc("/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("workouts-delete")
	workoutsRouter.HandleFunc("/{username}", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	workoutsRouter.HandleFunc("/{username}/active", handler.HandleListActive).Methods("GET", "OPTIONS").Name("workouts-active")
	workoutsRouter.HandleFunc("/{username}/completed", handler.HandleHistory).Methods("GET", "OPTIONS").Name("workouts-completed")
	workoutsRouter.HandleFunc("/{username}/pulse-history", handler.HandlePulseHistory).Methods("GET", "OPTIONS").Name("workouts-pulse-history")
}

func (handler *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises")
	defer span.End()

	var (
		level catalog.Level
		part  catalog.BodyPart
		err   error
	)
	if levelParam := r.URL.Query().Get("level"); levelParam != "" {
		if level, err = catalog.ParseLevel(levelParam); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if partParam := r.URL.Query().Get("bodyPart"); partParam != "" {
		if part, err = catalog.ParseBodyPart(partParam); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	buckets := handler.catalog.Buckets(level, part)
	if buckets == nil {
		buckets = []catalog.Bucket{}
	}
	pkg.WriteJSON(w, buckets, http.StatusOK)
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.generate")
	defer span.End()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("generate workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	level, err := catalog.ParseLevel(req.Level)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.TargetAreas) == 0 {
		http.Error(w, "error, target areas empty", http.StatusBadRequest)
		return
	}
	areas := make([]catalog.BodyPart, 0, len(req.TargetAreas))
	for _, a := range req.TargetAreas {
		part, err := catalog.ParseBodyPart(a)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// target areas are a set
		if slices.Contains(areas, part) {
			continue
		}
		areas = append(areas, part)
	}

	bmi, err := requestBMI(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(
		attribute.String("workout.level", string(level)),
		attribute.Float64("workout.bmi", bmi),
		attribute.Int("workout.areas", len(areas)),
	)

	workout := handler.generator.Generate(level, bmi, areas)

	scaled := bmi >= generator.ObeseBMIThreshold
	handler.metrics.CounterWorkoutsGenerated.WithLabelValues(string(level), strconv.FormatBool(scaled)).Inc()
	log.Tracef("generated %s workout with %d exercises, bmi %.1f", level, len(workout.Exercises), bmi)

	pkg.WriteJSON(w, workout, http.StatusOK)
}

// requestBMI takes the BMI as sent, computes it from weight and height, or returns 0 (no scaling) if neither is set.
func requestBMI(req GenerateRequest) (float64, error) {
	switch {
	case req.BMI != nil:
		if *req.BMI <= 0 {
			return 0, fmt.Errorf("%w: bmi must be positive", generator.ErrInvalidBodyMetrics)
		}
		return *req.BMI, nil
	case req.Weight != nil || req.Height != nil:
		if req.Weight == nil || req.Height == nil {
			return 0, fmt.Errorf("%w: both weight and height are required", generator.ErrInvalidBodyMetrics)
		}
		return generator.BMI(*req.Weight, *req.Height)
	default:
		return 0, nil
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("save workout, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	username := req.Username
	if username == "" {
		if session, ok := auth.SessionFromContext(ctx); ok {
			username = session.Username
		}
	}

	created, err := handler.service.Create(ctx, username, req.Workout)
	if errors.Is(err, ErrMissingUsername) || errors.Is(err, ErrEmptyWorkout) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("save workout for [%s]: %s", username, err)
		http.Error(w, "Failed to save workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout %s saved for [%s]", created.ID, created.Username)
	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (handler *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateStatus")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("update workout status, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status, err := ParseStatus(req.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bpm := req.PulseRate
	if bpm == nil {
		bpm = req.RecentPulseRate
	}
	if bpm == nil {
		http.Error(w, "error, pulse rate missing", http.StatusBadRequest)
		return
	}

	updated, err := handler.service.UpdateStatus(ctx, id, status, *bpm)
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case errors.Is(err, pulse.ErrPulseOutOfRange), errors.Is(err, ErrMissingInitialPulse):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("update workout %s status to %s: %s", id, status, err)
		http.Error(w, "Failed to update workout status", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "Workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %s: %s", id, err)
		http.Error(w, "Failed to delete workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, MessageResponse{Message: "Workout deleted successfully"}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "handler.workouts.list", handler.service.List)
}

func (handler *Handler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "handler.workouts.listActive", handler.service.ListActive)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, "handler.workouts.history", handler.service.History)
}

func (handler *Handler) list(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	listFunc func(ctx context.Context, username string) ([]Workout, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	username := mux.Vars(r)["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	workouts, err := listFunc(ctx, username)
	if err != nil {
		log.Errorf("list workouts for [%s]: %s", username, err)
		http.Error(w, "Failed to retrieve workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *Handler) HandlePulseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.pulseHistory")
	defer span.End()

	username := mux.Vars(r)["username"]
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}

	records, err := handler.service.PulseHistory(ctx, username)
	if err != nil {
		log.Errorf("pulse history for [%s]: %s", username, err)
		http.Error(w, "Failed to retrieve pulse history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []PulseRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}
