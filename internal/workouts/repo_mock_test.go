package workouts

import (
	"context"
	"sync"
)

type repoMock struct {
	mu       sync.Mutex
	workouts map[string]Workout
	err      error
}

func newRepoMock() *repoMock {
	return &repoMock{
		workouts: make(map[string]Workout),
	}
}

func (r *repoMock) Add(_ context.Context, w *Workout) (*Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.workouts[w.ID] = *w
	return w, nil
}

func (r *repoMock) Get(_ context.Context, id string) (*Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.workouts[id]
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	return &w, nil
}

func (r *repoMock) ListByUsername(_ context.Context, username string) ([]Workout, error) {
	return r.filter(func(w Workout) bool {
		return w.Username == username
	})
}

func (r *repoMock) ListCompleted(_ context.Context, username string) ([]Workout, error) {
	return r.filter(func(w Workout) bool {
		return w.Username == username && w.Status == StatusCompleted
	})
}

func (r *repoMock) filter(keep func(w Workout) bool) ([]Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	workouts := []Workout{}
	for _, w := range r.workouts {
		if keep(w) {
			workouts = append(workouts, w)
		}
	}
	return workouts, nil
}

func (r *repoMock) Update(_ context.Context, w *Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.workouts[w.ID]; !ok {
		return ErrWorkoutNotFound
	}
	r.workouts[w.ID] = *w
	return nil
}

func (r *repoMock) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.workouts[id]; !ok {
		return ErrWorkoutNotFound
	}
	delete(r.workouts, id)
	return nil
}
