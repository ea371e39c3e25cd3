package model

// Task is a to-do item scheduled on a calendar date.
type Task struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	CourseID  *string `json:"courseId"`
	Time      string  `json:"time,omitempty"`
}

// HasCourse reports whether the task is tagged with a course.
func (t Task) HasCourse() bool {
	return t.CourseID != nil && *t.CourseID != ""
}

// DatedTask is a task together with the date key it is stored under.
type DatedTask struct {
	Task
	Date string `json:"date"`
}

// DeletedTask is the undo candidate produced by a delete.
type DeletedTask struct {
	Task Task   `json:"task"`
	Date string `json:"date"`
}

// TaskIndex maps a YYYY-MM-DD date key to its tasks, newest first.
// A key is never mapped to an empty slice.
type TaskIndex map[string][]Task

// Clone returns a deep copy of the index.
func (idx TaskIndex) Clone() TaskIndex {
	out := make(TaskIndex, len(idx))
	for date, tasks := range idx {
		cp := make([]Task, len(tasks))
		for i, t := range tasks {
			cp[i] = t.clone()
		}
		out[date] = cp
	}
	return out
}

// Find scans every date for the task with the given id.
func (idx TaskIndex) Find(taskID string) (Task, string, bool) {
	for date, tasks := range idx {
		for _, t := range tasks {
			if t.ID == taskID {
				return t, date, true
			}
		}
	}
	return Task{}, "", false
}

// Prepend inserts t at the front of date's sequence.
func (idx TaskIndex) Prepend(date string, t Task) {
	idx[date] = append([]Task{t}, idx[date]...)
}

// Remove deletes the task from date, dropping the key once it is empty.
func (idx TaskIndex) Remove(date, taskID string) (Task, bool) {
	tasks := idx[date]
	for i, t := range tasks {
		if t.ID != taskID {
			continue
		}
		rest := make([]Task, 0, len(tasks)-1)
		rest = append(rest, tasks[:i]...)
		rest = append(rest, tasks[i+1:]...)
		if len(rest) == 0 {
			delete(idx, date)
		} else {
			idx[date] = rest
		}
		return t, true
	}
	return Task{}, false
}

// Prune drops every date key that maps to no tasks.
func (idx TaskIndex) Prune() {
	for date, tasks := range idx {
		if len(tasks) == 0 {
			delete(idx, date)
		}
	}
}

// Len returns the total number of tasks across all dates.
func (idx TaskIndex) Len() int {
	n := 0
	for _, tasks := range idx {
		n += len(tasks)
	}
	return n
}

func (t Task) clone() Task {
	if t.CourseID != nil {
		id := *t.CourseID
		t.CourseID = &id
	}
	return t
}
