package workouts

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/metrics"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/catalog"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/generator"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/workouts/pulse"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMissingUsername = errors.New("username missing")
	ErrEmptyWorkout    = errors.New("workout has no exercises")
)

type workoutsRepo interface {
	Add(ctx context.Context, w *Workout) (*Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
	ListByUsername(ctx context.Context, username string) ([]Workout, error)
	ListCompleted(ctx context.Context, username string) ([]Workout, error)
	Update(ctx context.Context, w *Workout) error
	Delete(ctx context.Context, id string) error
}

// Service owns the workout lifecycle: saving generated workouts, status transitions and listings.
type Service struct {
	repo    workoutsRepo
	metrics *metrics.Manager

	// injectable for tests
	now   func() time.Time
	newID func() string
}

func NewService(repo workoutsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create saves a generated workout for username, in the inactive state.
func (s *Service) Create(ctx context.Context, username string, generated generator.Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}
	if len(generated.Exercises) == 0 {
		return nil, ErrEmptyWorkout
	}
	if generated.Duration == "" {
		generated.Duration = generator.EstimateDuration(len(generated.Exercises))
	}

	w := &Workout{
		ID:        s.newID(),
		Username:  username,
		Workout:   generated,
		Status:    StatusInactive,
		CreatedAt: s.now(),
	}

	added, err := s.repo.Add(ctx, w)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterWorkoutsSaved.Inc()
	return added, nil
}

// UpdateStatus applies a lifecycle transition to the stored workout and persists the result.
// Concurrent updates of the same workout are last-write-wins.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status, bpm int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metrics.CounterWorkoutTransitions.WithLabelValues(string(to), result).Inc()
	}()
	span.SetAttributes(
		attribute.String("workout.id", id),
		attribute.String("workout.to", string(to)),
	)

	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := w.Transition(to, bpm, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}

	if w.Status == StatusCompleted && w.PulseRates.PercentageChange != nil {
		s.metrics.HistogramPulseIncreasePerc.Observe(*w.PulseRates.PercentageChange)
	}

	log.Debugf("workout %s [%s] -> %s", w.ID, w.Username, w.Status)
	return w, nil
}

func (s *Service) Start(ctx context.Context, id string, initialBPM int) (*Workout, error) {
	return s.UpdateStatus(ctx, id, StatusActive, initialBPM)
}

func (s *Service) Complete(ctx context.Context, id string, finalBPM int) (*Workout, error) {
	return s.UpdateStatus(ctx, id, StatusCompleted, finalBPM)
}

// Delete removes the workout regardless of its status.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.CounterWorkoutsDeleted.Inc()
	return nil
}

// List returns all workouts of the user, newest first.
func (s *Service) List(ctx context.Context, username string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ListByUsername(ctx, username)
}

// ListActive returns not yet completed workouts: the active ones first, then by creation time, newest first.
func (s *Service) ListActive(ctx context.Context, username string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listActive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	pending := make([]Workout, 0, len(all))
	for _, w := range all {
		if w.Status == StatusInactive || w.Status == StatusActive {
			pending = append(pending, w)
		}
	}

	slices.SortStableFunc(pending, func(a, b Workout) int {
		aActive, bActive := a.Status == StatusActive, b.Status == StatusActive
		if aActive != bActive {
			if aActive {
				return -1
			}
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return pending, nil
}

// History returns completed workouts, most recently completed first.
func (s *Service) History(ctx context.Context, username string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := s.repo.ListCompleted(ctx, username)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(completed, func(a, b Workout) int {
		return compareTimeDesc(a.CompletedAt, b.CompletedAt)
	})

	return completed, nil
}

// PulseHistory returns completed workouts which carry both pulse measurements.
func (s *Service) PulseHistory(ctx context.Context, username string) (_ []PulseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.pulseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	completed, err := s.History(ctx, username)
	if err != nil {
		return nil, err
	}

	records := []PulseRecord{}
	for _, w := range completed {
		if w.PulseRates.Final == nil || w.PulseRates.PercentageChange == nil {
			continue
		}
		records = append(records, PulseRecord{
			Workout:   w,
			Intensity: pulse.Classify(*w.PulseRates.PercentageChange),
		})
	}

	return records, nil
}

// Stats aggregates the user's workouts for the profile page.
func (s *Service) Stats(ctx context.Context, username string) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalWorkouts: len(all),
		Intensity:     map[pulse.Intensity]int{},
	}

	var pulseChanges []float64
	for _, w := range all {
		switch w.Status {
		case StatusInactive:
			stats.Inactive++
		case StatusActive:
			stats.Active++
		case StatusCompleted:
			stats.Completed++
			stats.CompletedExercises += len(w.Workout.Exercises)
			stats.CompletedMinutes += durationMinutes(w.Workout.Duration)
			if w.CompletedAt != nil && (stats.LastCompletedAt == nil || w.CompletedAt.After(*stats.LastCompletedAt)) {
				stats.LastCompletedAt = w.CompletedAt
			}
			if w.PulseRates.PercentageChange != nil {
				pct := *w.PulseRates.PercentageChange
				pulseChanges = append(pulseChanges, pct)
				stats.Intensity[pulse.Classify(pct)]++
			}
		}
	}

	if len(pulseChanges) > 0 {
		var sum float64
		for _, pct := range pulseChanges {
			sum += pct
		}
		avg := pulse.Round1(sum / float64(len(pulseChanges)))
		maxChange := slices.Max(pulseChanges)
		stats.AvgPulseChange = &avg
		stats.MaxPulseChange = &maxChange
	}

	return stats, nil
}

// durationMinutes reads the estimate stored with a workout, e.g. "9 minutes".
func durationMinutes(duration string) int {
	d, err := catalog.ParseDuration(duration)
	if err != nil || !strings.HasPrefix(d.Unit, "minute") {
		return 0
	}
	return d.Amount
}

// compareTimeDesc orders newer first and missing timestamps last.
func compareTimeDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(b.UnixNano(), a.UnixNano())
	}
}
