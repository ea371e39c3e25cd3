package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"planner/internal/model"
	"planner/internal/store"
)

// TaskRepository owns the task-by-date index and writes it through to the
// store after every mutation.
type TaskRepository struct {
	mu    sync.Mutex
	store store.Store
	log   *zap.Logger

	index   model.TaskIndex
	pending *model.DeletedTask
}

func NewTaskRepository(st store.Store, log *zap.Logger) *TaskRepository {
	return &TaskRepository{
		store: st,
		log:   log.Named("tasks"),
		index: model.TaskIndex{},
	}
}

// Load replaces the in-memory index with the stored one. Missing or
// unreadable data yields an empty index.
func (r *TaskRepository) Load(ctx context.Context) model.TaskIndex {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index = r.read(ctx)
	return r.index.Clone()
}

// Index returns a copy of the current in-memory index.
func (r *TaskRepository) Index() model.TaskIndex {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index.Clone()
}

// FindTask returns the task with the given id and the date it is stored under.
func (r *TaskRepository) FindTask(taskID string) (model.Task, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, date, ok := r.index.Find(taskID)
	if !ok {
		return model.Task{}, "", ErrTaskNotFound
	}
	return task, date, nil
}

// AddTask creates a task at the front of dateKey's list.
func (r *TaskRepository) AddTask(ctx context.Context, dateKey, title string, courseID *string, timeOfDay string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	if dateKey == "" {
		return model.Task{}, ErrEmptyDate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task := model.Task{
		ID:       newID(),
		Title:    title,
		CourseID: normalizeCourseID(courseID),
		Time:     timeOfDay,
	}

	next := r.index.Clone()
	next.Prepend(dateKey, task)
	if err := r.commit(ctx, next); err != nil {
		return model.Task{}, err
	}

	r.log.Debug("task added", zap.String("task_id", task.ID), zap.String("date", dateKey))
	return task, nil
}

// EditTask rewrites a task and moves it to the front of newDateKey,
// keeping its id and completion state.
func (r *TaskRepository) EditTask(ctx context.Context, taskID, newDateKey, title string, courseID *string, timeOfDay string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	if newDateKey == "" {
		return model.Task{}, ErrEmptyDate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.index.Clone()
	old, oldDate, ok := next.Find(taskID)
	if !ok {
		return model.Task{}, ErrTaskNotFound
	}
	next.Remove(oldDate, taskID)

	updated := model.Task{
		ID:        old.ID,
		Title:     title,
		Completed: old.Completed,
		CourseID:  normalizeCourseID(courseID),
		Time:      timeOfDay,
	}
	next.Prepend(newDateKey, updated)

	if err := r.commit(ctx, next); err != nil {
		return model.Task{}, err
	}

	r.log.Debug("task edited",
		zap.String("task_id", taskID),
		zap.String("from", oldDate),
		zap.String("to", newDateKey),
	)
	return updated, nil
}

// ToggleTask flips the completed flag of the task at dateKey.
func (r *TaskRepository) ToggleTask(ctx context.Context, dateKey, taskID string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.index.Clone()
	tasks := next[dateKey]
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if err := r.commit(ctx, next); err != nil {
			return model.Task{}, err
		}
		return tasks[i], nil
	}
	return model.Task{}, ErrTaskNotFound
}

// DeleteTask removes the task and keeps it as the single undo candidate,
// replacing any earlier one.
func (r *TaskRepository) DeleteTask(ctx context.Context, dateKey, taskID string) (model.DeletedTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.index.Clone()
	removed, ok := next.Remove(dateKey, taskID)
	if !ok {
		return model.DeletedTask{}, ErrTaskNotFound
	}
	if err := r.commit(ctx, next); err != nil {
		return model.DeletedTask{}, err
	}

	deleted := model.DeletedTask{Task: removed, Date: dateKey}
	r.pending = &deleted
	r.log.Debug("task deleted", zap.String("task_id", taskID), zap.String("date", dateKey))
	return deleted, nil
}

// UndoDelete puts a removed task back at the front of dateKey. A task whose id
// is already stored is not restored again and yields ErrTaskExists.
func (r *TaskRepository) UndoDelete(ctx context.Context, removed model.Task, dateKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restore(ctx, removed, dateKey)
}

// UndoLastDelete restores the pending undo candidate, if any.
func (r *TaskRepository) UndoLastDelete(ctx context.Context) (model.DeletedTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return model.DeletedTask{}, ErrNothingToUndo
	}
	deleted := *r.pending
	if err := r.restore(ctx, deleted.Task, deleted.Date); err != nil {
		return model.DeletedTask{}, err
	}
	return deleted, nil
}

// PendingUndo reports the current undo candidate.
func (r *TaskRepository) PendingUndo() (model.DeletedTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return model.DeletedTask{}, false
	}
	return *r.pending, true
}

func (r *TaskRepository) restore(ctx context.Context, removed model.Task, dateKey string) error {
	if dateKey == "" {
		return ErrEmptyDate
	}
	if _, _, ok := r.index.Find(removed.ID); ok {
		return ErrTaskExists
	}
	next := r.index.Clone()
	next.Prepend(dateKey, removed)
	if err := r.commit(ctx, next); err != nil {
		return err
	}
	r.pending = nil
	return nil
}

func (r *TaskRepository) read(ctx context.Context) model.TaskIndex {
	raw, ok, err := r.store.Get(ctx, store.KeyTasksByDate)
	if err != nil {
		r.log.Warn("reading tasks failed, starting empty", zap.Error(err))
		return model.TaskIndex{}
	}
	if !ok {
		return model.TaskIndex{}
	}

	var idx model.TaskIndex
	if err := json.Unmarshal([]byte(raw), &idx); err != nil {
		r.log.Warn("stored tasks are malformed, starting empty", zap.Error(err))
		return model.TaskIndex{}
	}
	if idx == nil {
		return model.TaskIndex{}
	}
	idx.Prune()
	return idx
}

// commit writes next to the store and adopts it only once the write succeeded.
func (r *TaskRepository) commit(ctx context.Context, next model.TaskIndex) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := r.store.Set(ctx, store.KeyTasksByDate, string(data)); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}
	r.index = next
	return nil
}

func normalizeCourseID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	cp := *id
	return &cp
}
