package store

import "context"

// Keys under which planner state is persisted.
const (
	KeyTasksByDate  = "@tasksByDate"
	KeyCourses      = "@courses"
	KeyCourseColors = "@courseColors"
)

// Store is a string key/value store. A missing key is reported with ok=false,
// not with an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
