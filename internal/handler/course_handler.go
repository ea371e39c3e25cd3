package handler

import (
	"net/http"

	"planner/internal/repository"
	"planner/internal/view"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseRepo *repository.CourseRepository
}

func NewCourseHandler(courseRepo *repository.CourseRepository) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo}
}

type CourseRequest struct {
	Name      string `json:"name"`
	Professor string `json:"professor"`
}

type CourseRenameRequest struct {
	Name string `json:"name"`
}

type CourseColorRequest struct {
	Color string `json:"color" binding:"required"`
}

// GetAll lists courses with their colors, generating colors that are missing
func (h *CourseHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	catalog := h.courseRepo.Load(ctx)

	if _, err := h.courseRepo.EnsureColors(ctx, catalog.Courses); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": view.Courses(catalog.Courses, h.courseRepo.Colors())})
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course, err := h.courseRepo.AddCourse(c.Request.Context(), req.Name, req.Professor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.CourseCard{Course: course, Color: view.CourseColor(h.courseRepo.Colors(), course.ID)})
}

// Update renames a course; a blank name leaves it unchanged
func (h *CourseHandler) Update(c *gin.Context) {
	var req CourseRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	course, err := h.courseRepo.EditCourse(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view.CourseCard{Course: course, Color: view.CourseColor(h.courseRepo.Colors(), course.ID)})
}

func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseRepo.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) SetColor(c *gin.Context) {
	var req CourseColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Color is required"})
		return
	}

	id := c.Param("id")
	if _, ok := h.courseRepo.Lookup(id); !ok {
		respondError(c, repository.ErrCourseNotFound)
		return
	}
	if err := h.courseRepo.AssignColor(c.Request.Context(), id, req.Color); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "color": req.Color})
}
