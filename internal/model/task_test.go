package model_test

import (
	"testing"

	"planner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTaskIndex_RemovePrunesEmptyDate(t *testing.T) {
	idx := model.TaskIndex{}
	idx.Prepend("2024-03-01", model.Task{ID: "a", Title: "HW1"})

	removed, ok := idx.Remove("2024-03-01", "a")

	assert.True(t, ok)
	assert.Equal(t, "HW1", removed.Title)
	_, exists := idx["2024-03-01"]
	assert.False(t, exists)
}

func TestTaskIndex_RemoveKeepsOrder(t *testing.T) {
	idx := model.TaskIndex{}
	idx.Prepend("2024-03-01", model.Task{ID: "a"})
	idx.Prepend("2024-03-01", model.Task{ID: "b"})
	idx.Prepend("2024-03-01", model.Task{ID: "c"})

	_, ok := idx.Remove("2024-03-01", "b")

	require.True(t, ok)
	require.Len(t, idx["2024-03-01"], 2)
	assert.Equal(t, "c", idx["2024-03-01"][0].ID)
	assert.Equal(t, "a", idx["2024-03-01"][1].ID)
}

func TestTaskIndex_RemoveUnknown(t *testing.T) {
	idx := model.TaskIndex{"2024-03-01": {{ID: "a"}}}

	_, ok := idx.Remove("2024-03-01", "zzz")
	assert.False(t, ok)
	_, ok = idx.Remove("2024-03-02", "a")
	assert.False(t, ok)
	assert.Len(t, idx["2024-03-01"], 1)
}

func TestTaskIndex_Find(t *testing.T) {
	idx := model.TaskIndex{
		"2024-03-01": {{ID: "a"}},
		"2024-03-05": {{ID: "b", Title: "Essay"}},
	}

	task, date, ok := idx.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-05", date)
	assert.Equal(t, "Essay", task.Title)

	_, _, ok = idx.Find("missing")
	assert.False(t, ok)
}

func TestTaskIndex_CloneIsDeep(t *testing.T) {
	idx := model.TaskIndex{"2024-03-01": {{ID: "a", CourseID: strPtr("c1")}}}

	cp := idx.Clone()
	cp["2024-03-01"][0].Title = "changed"
	*cp["2024-03-01"][0].CourseID = "c2"
	cp.Prepend("2024-03-02", model.Task{ID: "b"})

	assert.Equal(t, "", idx["2024-03-01"][0].Title)
	assert.Equal(t, "c1", *idx["2024-03-01"][0].CourseID)
	assert.NotContains(t, idx, "2024-03-02")
	assert.Equal(t, 2, cp.Len())
}

func TestTaskIndex_Prune(t *testing.T) {
	idx := model.TaskIndex{"2024-03-01": {}, "2024-03-02": {{ID: "a"}}}
	idx.Prune()
	assert.NotContains(t, idx, "2024-03-01")
	assert.Contains(t, idx, "2024-03-02")
}

func TestTask_HasCourse(t *testing.T) {
	assert.False(t, model.Task{}.HasCourse())
	assert.False(t, model.Task{CourseID: strPtr("")}.HasCourse())
	assert.True(t, model.Task{CourseID: strPtr("c1")}.HasCourse())
}
