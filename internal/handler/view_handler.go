package handler

import (
	"net/http"

	"planner/internal/repository"
	"planner/internal/view"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the read-only screens. Every request reloads state from
// the store first.
type ViewHandler struct {
	taskRepo   *repository.TaskRepository
	courseRepo *repository.CourseRepository
}

func NewViewHandler(taskRepo *repository.TaskRepository, courseRepo *repository.CourseRepository) *ViewHandler {
	return &ViewHandler{
		taskRepo:   taskRepo,
		courseRepo: courseRepo,
	}
}

// Home lists every task ordered by date, generating any missing course colors.
func (h *ViewHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()
	idx := h.taskRepo.Load(ctx)
	catalog := h.courseRepo.Load(ctx)

	if _, err := h.courseRepo.EnsureColors(ctx, catalog.Courses); err != nil {
		respondError(c, err)
		return
	}

	cards := view.Decorate(view.AllTasks(idx), catalog.Courses, h.courseRepo.Colors())
	c.JSON(http.StatusOK, gin.H{"tasks": cards})
}

// Tasks lists tasks grouped by date.
func (h *ViewHandler) Tasks(c *gin.Context) {
	ctx := c.Request.Context()
	idx := h.taskRepo.Load(ctx)
	catalog := h.courseRepo.Load(ctx)

	c.JSON(http.StatusOK, gin.H{"dates": view.GroupByDate(idx, catalog.Courses, catalog.Colors)})
}

// Day lists one date's tasks ordered by time.
func (h *ViewHandler) Day(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")
	idx := h.taskRepo.Load(ctx)
	catalog := h.courseRepo.Load(ctx)

	cards := view.Decorate(view.DayAgenda(idx, date), catalog.Courses, catalog.Colors)
	c.JSON(http.StatusOK, gin.H{"date": date, "tasks": cards})
}
