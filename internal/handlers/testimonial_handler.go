package handlers

import (
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TestimonialHandler handles HTTP requests related to testimonials
type TestimonialHandler struct {
	testimonialRepository repositories.TestimonialRepository
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(testimonialRepo repositories.TestimonialRepository) *TestimonialHandler {
	return &TestimonialHandler{testimonialRepository: testimonialRepo}
}

// RegisterTestimonialRoutes registers testimonial routes. Reads are public;
// mutations require an admin.
func (h *TestimonialHandler) RegisterTestimonialRoutes(public, admin *echo.Group) {
	public.GET("/testimonials", h.GetTestimonials)
	public.GET("/testimonials/:id", h.GetTestimonial)
	admin.POST("/testimonials", h.CreateTestimonial)
	admin.PUT("/testimonials/:id", h.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", h.DeleteTestimonial)
}

// CreateTestimonial creates a new testimonial
func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var req models.CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t := &models.Testimonial{
		Name:        req.Name,
		Testimonial: req.Testimonial,
		Designation: req.Designation,
		Link:        req.Link,
	}

	if err := h.testimonialRepository.CreateTestimonial(c.Request().Context(), t); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, t)
}

// GetTestimonials retrieves all testimonials
func (h *TestimonialHandler) GetTestimonials(c echo.Context) error {
	testimonials, err := h.testimonialRepository.GetAllTestimonials(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, testimonials)
}

// GetTestimonial retrieves a single testimonial
func (h *TestimonialHandler) GetTestimonial(c echo.Context) error {
	t, err := h.testimonialRepository.GetTestimonialByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
	}
	return c.JSON(http.StatusOK, t)
}

// UpdateTestimonial updates an existing testimonial
func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	id := c.Param("id")

	var req models.UpdateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.testimonialRepository.GetTestimonialByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
	}

	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Testimonial != "" {
		t.Testimonial = req.Testimonial
	}
	if req.Designation != "" {
		t.Designation = req.Designation
	}
	if req.Link != "" {
		t.Link = req.Link
	}

	if err := h.testimonialRepository.UpdateTestimonial(c.Request().Context(), id, t); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, t)
}

// DeleteTestimonial deletes a testimonial
func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.testimonialRepository.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Testimonial not found")
	}
	return c.NoContent(http.StatusNoContent)
}
