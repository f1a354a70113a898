package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `
	id::text, username, workout, status,
	pulse_initial, pulse_final, pulse_difference, pulse_percentage_change,
	created_at, activated_at, completed_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, w *Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("parse workout id: %w", err)
	}

	workoutJson, err := json.Marshal(w.Workout)
	if err != nil {
		return nil, fmt.Errorf("marshal workout: %w", err)
	}

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO workout
				(id, username, workout, status, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		id, w.Username, workoutJson, string(w.Status), w.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return w, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	workoutID, err := uuid.Parse(id)
	if err != nil {
		// malformed ids cannot exist
		return nil, ErrWorkoutNotFound
	}

	row := r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workout WHERE id = $1;`,
		workoutID,
	)
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	return w, nil
}

// ListByUsername returns all workouts of the user, newest first.
func (r *Repo) ListByUsername(ctx context.Context, username string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.list(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workout
			WHERE username = $1
			ORDER BY created_at DESC;`,
		username,
	)
}

// ListCompleted returns the completed workouts of the user, most recently completed first.
func (r *Repo) ListCompleted(ctx context.Context, username string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.list(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workout
			WHERE username = $1 AND status = $2
			ORDER BY completed_at DESC;`,
		username, string(StatusCompleted),
	)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]Workout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workouts, nil
}

// Update persists the status, pulse rates and transition timestamps of the workout.
func (r *Repo) Update(ctx context.Context, w *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("workout.id", w.ID),
		attribute.String("workout.status", string(w.Status)),
	)

	workoutID, err := uuid.Parse(w.ID)
	if err != nil {
		return ErrWorkoutNotFound
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET
				status = $1,
				pulse_initial = $2,
				pulse_final = $3,
				pulse_difference = $4,
				pulse_percentage_change = $5,
				activated_at = $6,
				completed_at = $7
			WHERE id = $8;`,
		string(w.Status),
		w.PulseRates.Initial,
		w.PulseRates.Final,
		w.PulseRates.Difference,
		w.PulseRates.PercentageChange,
		w.ActivatedAt,
		w.CompletedAt,
		workoutID,
	)
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutID, err := uuid.Parse(id)
	if err != nil {
		return ErrWorkoutNotFound
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout WHERE id = $1;`,
		workoutID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var (
		w           Workout
		status      string
		workoutJson []byte
	)
	if err := row.Scan(
		&w.ID,
		&w.Username,
		&workoutJson,
		&status,
		&w.PulseRates.Initial,
		&w.PulseRates.Final,
		&w.PulseRates.Difference,
		&w.PulseRates.PercentageChange,
		&w.CreatedAt,
		&w.ActivatedAt,
		&w.CompletedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(workoutJson, &w.Workout); err != nil {
		return nil, fmt.Errorf("unmarshal workout %s: %w", w.ID, err)
	}
	w.Status = Status(status)

	return &w, nil
}
