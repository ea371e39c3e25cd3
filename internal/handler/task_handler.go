package handler

import (
	"net/http"

	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/view"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskRepo   *repository.TaskRepository
	courseRepo *repository.CourseRepository
}

func NewTaskHandler(taskRepo *repository.TaskRepository, courseRepo *repository.CourseRepository) *TaskHandler {
	return &TaskHandler{
		taskRepo:   taskRepo,
		courseRepo: courseRepo,
	}
}

// TaskRequest is the body for creating or editing a task.
type TaskRequest struct {
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	CourseID *string `json:"course_id"`
	Time     string  `json:"time"`
}

// Create adds a task on the requested date
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.AddTask(c.Request.Context(), req.Date, req.Title, req.CourseID, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.card(task, req.Date))
}

// Update rewrites a task, moving it to another date if needed
func (h *TaskHandler) Update(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.EditTask(c.Request.Context(), c.Param("id"), req.Date, req.Title, req.CourseID, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.card(task, req.Date))
}

// Toggle flips the completed flag
func (h *TaskHandler) Toggle(c *gin.Context) {
	date := c.Param("date")
	task, err := h.taskRepo.ToggleTask(c.Request.Context(), date, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.card(task, date))
}

// Delete removes a task and returns it as the undo candidate
func (h *TaskHandler) Delete(c *gin.Context) {
	deleted, err := h.taskRepo.DeleteTask(c.Request.Context(), c.Param("date"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}

// Undo restores the most recently deleted task
func (h *TaskHandler) Undo(c *gin.Context) {
	restored, err := h.taskRepo.UndoLastDelete(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.card(restored.Task, restored.Date))
}

func (h *TaskHandler) card(task model.Task, date string) view.TaskCard {
	cards := view.Decorate(
		[]model.DatedTask{{Task: task, Date: date}},
		h.courseRepo.Courses(),
		h.courseRepo.Colors(),
	)
	return cards[0]
}
