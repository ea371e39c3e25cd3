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

// CourseRepository owns the course list and the per-course color map.
type CourseRepository struct {
	mu    sync.Mutex
	store store.Store
	log   *zap.Logger
	hue   HueFunc

	courses []model.Course
	colors  model.ColorMap
}

func NewCourseRepository(st store.Store, log *zap.Logger) *CourseRepository {
	return &CourseRepository{
		store:   st,
		log:     log.Named("courses"),
		hue:     RandomHue,
		courses: []model.Course{},
		colors:  model.ColorMap{},
	}
}

// WithHue replaces the hue generator used by EnsureColors.
func (r *CourseRepository) WithHue(hue HueFunc) *CourseRepository {
	r.hue = hue
	return r
}

// Load replaces in-memory state with the stored courses and colors. Each key
// falls back to an empty value on its own.
func (r *CourseRepository) Load(ctx context.Context) model.CourseCatalog {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := []model.Course{}
	if !r.read(ctx, store.KeyCourses, &courses) || courses == nil {
		courses = []model.Course{}
	}
	colors := model.ColorMap{}
	if !r.read(ctx, store.KeyCourseColors, &colors) || colors == nil {
		colors = model.ColorMap{}
	}

	r.courses = courses
	r.colors = colors
	return r.catalog()
}

func (r *CourseRepository) Courses() []model.Course {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneCourses(r.courses)
}

func (r *CourseRepository) Colors() model.ColorMap {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.colors.Clone()
}

// Lookup returns the course with the given id.
func (r *CourseRepository) Lookup(id string) (model.Course, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return model.Course{}, false
	}
	return r.courses[i], true
}

func (r *CourseRepository) AddCourse(ctx context.Context, name, professor string) (model.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Course{}, ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	course := model.Course{
		ID:        newID(),
		Name:      name,
		Professor: strings.TrimSpace(professor),
	}
	next := append([]model.Course{course}, r.courses...)
	if err := r.persistCourses(ctx, next); err != nil {
		return model.Course{}, err
	}

	r.log.Debug("course added", zap.String("course_id", course.ID))
	return course, nil
}

// EditCourse renames a course. A blank name keeps the current one.
func (r *CourseRepository) EditCourse(ctx context.Context, id, newName string) (model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Course{}, ErrCourseNotFound
	}

	next := cloneCourses(r.courses)
	if name := strings.TrimSpace(newName); name != "" {
		next[i].Name = name
	}
	if err := r.persistCourses(ctx, next); err != nil {
		return model.Course{}, err
	}
	return next[i], nil
}

// DeleteCourse removes the course and its color. Tasks that reference it are
// left alone.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrCourseNotFound
	}

	courses := make([]model.Course, 0, len(r.courses)-1)
	courses = append(courses, r.courses[:i]...)
	courses = append(courses, r.courses[i+1:]...)
	colors := r.colors.Clone()
	delete(colors, id)

	// Colors go first: a failure after this point must not leave the course
	// deleted while its color survives.
	prevColors := r.colors
	if err := r.persistColors(ctx, colors); err != nil {
		return err
	}
	if err := r.persistCourses(ctx, courses); err != nil {
		if rbErr := r.persistColors(ctx, prevColors); rbErr != nil {
			r.log.Warn("restoring course colors failed", zap.String("course_id", id), zap.Error(rbErr))
		}
		return err
	}

	r.log.Debug("course deleted", zap.String("course_id", id))
	return nil
}

// AssignColor sets the color for a course, overwriting any previous one.
func (r *CourseRepository) AssignColor(ctx context.Context, id, color string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	colors := r.colors.Clone()
	colors[id] = color
	return r.persistColors(ctx, colors)
}

// EnsureColors generates a color for every course that lacks one and persists
// the map once if anything was added. It returns the added entries.
func (r *CourseRepository) EnsureColors(ctx context.Context, courses []model.Course) (model.ColorMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := MissingColors(r.colors, courses, r.hue)
	if len(added) == 0 {
		return added, nil
	}

	colors := r.colors.Clone()
	for id, c := range added {
		colors[id] = c
	}
	if err := r.persistColors(ctx, colors); err != nil {
		return nil, err
	}

	r.log.Debug("course colors generated", zap.Int("count", len(added)))
	return added, nil
}

func (r *CourseRepository) catalog() model.CourseCatalog {
	return model.CourseCatalog{
		Courses: cloneCourses(r.courses),
		Colors:  r.colors.Clone(),
	}
}

func (r *CourseRepository) indexOf(id string) int {
	for i, c := range r.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *CourseRepository) read(ctx context.Context, key string, dst interface{}) bool {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.Warn("reading stored value failed, using empty", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.log.Warn("stored value is malformed, using empty", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CourseRepository) persistCourses(ctx context.Context, next []model.Course) error {
	if err := r.write(ctx, store.KeyCourses, next); err != nil {
		return err
	}
	r.courses = next
	return nil
}

func (r *CourseRepository) persistColors(ctx context.Context, next model.ColorMap) error {
	if err := r.write(ctx, store.KeyCourseColors, next); err != nil {
		return err
	}
	r.colors = next
	return nil
}

func (r *CourseRepository) write(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func cloneCourses(in []model.Course) []model.Course {
	out := make([]model.Course, len(in))
	copy(out, in)
	return out
}
