// Package view builds the read-only projections shown by each screen from the
// task index and the course catalog. Nothing here mutates repository state.
package view

import (
	"sort"

	"planner/internal/model"
)

const (
	// NoCourse is shown for tasks without a course or whose course was deleted.
	NoCourse = "No course"

	// DefaultColor is used when a task has no course color.
	DefaultColor = "#4CAF50"
)

// TaskCard is a task decorated for display.
type TaskCard struct {
	model.DatedTask
	CourseName  string `json:"course_name"`
	CourseColor string `json:"course_color"`
}

// DateGroup is one date and its cards.
type DateGroup struct {
	Date  string     `json:"date"`
	Tasks []TaskCard `json:"tasks"`
}

// CourseCard is a course with its resolved color.
type CourseCard struct {
	model.Course
	Color string `json:"color"`
}

// AllTasks flattens the index and orders it by date, keeping each date's
// stored order.
func AllTasks(idx model.TaskIndex) []model.DatedTask {
	out := make([]model.DatedTask, 0, idx.Len())
	for _, date := range sortedDates(idx) {
		for _, t := range idx[date] {
			out = append(out, model.DatedTask{Task: t, Date: date})
		}
	}
	return out
}

// DayAgenda returns the tasks of one date. Timed tasks come first ordered by
// time; untimed tasks follow in stored order.
func DayAgenda(idx model.TaskIndex, date string) []model.DatedTask {
	tasks := idx[date]
	out := make([]model.DatedTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, model.DatedTask{Task: t, Date: date})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Time, out[j].Time
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
	return out
}

// GroupByDate returns one group per non-empty date, ordered by date.
func GroupByDate(idx model.TaskIndex, courses []model.Course, colors model.ColorMap) []DateGroup {
	groups := make([]DateGroup, 0, len(idx))
	for _, date := range sortedDates(idx) {
		tasks := make([]model.DatedTask, 0, len(idx[date]))
		for _, t := range idx[date] {
			tasks = append(tasks, model.DatedTask{Task: t, Date: date})
		}
		groups = append(groups, DateGroup{Date: date, Tasks: Decorate(tasks, courses, colors)})
	}
	return groups
}

// Decorate resolves course name and color for every task.
func Decorate(tasks []model.DatedTask, courses []model.Course, colors model.ColorMap) []TaskCard {
	cards := make([]TaskCard, 0, len(tasks))
	for _, t := range tasks {
		var courseID string
		if t.HasCourse() {
			courseID = *t.CourseID
		}
		cards = append(cards, TaskCard{
			DatedTask:   t,
			CourseName:  CourseName(courses, courseID),
			CourseColor: CourseColor(colors, courseID),
		})
	}
	return cards
}

// Courses pairs every course with its color.
func Courses(courses []model.Course, colors model.ColorMap) []CourseCard {
	cards := make([]CourseCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, CourseCard{Course: c, Color: CourseColor(colors, c.ID)})
	}
	return cards
}

func CourseName(courses []model.Course, id string) string {
	if id == "" {
		return NoCourse
	}
	for _, c := range courses {
		if c.ID == id {
			return c.Name
		}
	}
	return NoCourse
}

func CourseColor(colors model.ColorMap, id string) string {
	if id == "" {
		return DefaultColor
	}
	if c, ok := colors[id]; ok && c != "" {
		return c
	}
	return DefaultColor
}

func sortedDates(idx model.TaskIndex) []string {
	dates := make([]string, 0, len(idx))
	for date, tasks := range idx {
		if len(tasks) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
