package repository

import "errors"

// Common repository errors
var (
	// ErrEmptyTitle is returned when a task title is blank after trimming
	ErrEmptyTitle = errors.New("task title is required")

	// ErrEmptyDate is returned when a task is scheduled without a date key
	ErrEmptyDate = errors.New("task date is required")

	// ErrTaskNotFound is returned when no task has the requested id
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskExists is returned when restoring a task whose id is already stored
	ErrTaskExists = errors.New("task already exists")

	// ErrNothingToUndo is returned when there is no deleted task pending undo
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrEmptyName is returned when a course name is blank after trimming
	ErrEmptyName = errors.New("course name is required")

	// ErrCourseNotFound is returned when no course has the requested id
	ErrCourseNotFound = errors.New("course not found")
)
