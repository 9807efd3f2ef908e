package handlers

import (
	"net/http"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests related to portfolio items
type PortfolioHandler struct {
	portfolioRepository repositories.PortfolioRepository
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioRepo repositories.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{portfolioRepository: portfolioRepo}
}

// RegisterPortfolioRoutes registers portfolio routes. Reads are public;
// mutations require an admin.
func (h *PortfolioHandler) RegisterPortfolioRoutes(public, admin *echo.Group) {
	public.GET("/portfolios", h.GetPortfolios)
	public.GET("/portfolios/:id", h.GetPortfolio)
	admin.POST("/portfolios", h.CreatePortfolio)
	admin.PUT("/portfolios/:id", h.UpdatePortfolio)
	admin.DELETE("/portfolios/:id", h.DeletePortfolio)
}

// CreatePortfolio creates a new portfolio item
func (h *PortfolioHandler) CreatePortfolio(c echo.Context) error {
	var req models.CreatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item := &models.Portfolio{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		Skills:       req.Skills,
		Link:         req.Link,
		Image:        req.Image,
	}

	if err := h.portfolioRepository.CreatePortfolio(c.Request().Context(), item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, item)
}

// GetPortfolios retrieves all portfolio items
func (h *PortfolioHandler) GetPortfolios(c echo.Context) error {
	items, err := h.portfolioRepository.GetAllPortfolios(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// GetPortfolio retrieves a single portfolio item
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	item, err := h.portfolioRepository.GetPortfolioByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Portfolio item not found")
	}
	return c.JSON(http.StatusOK, item)
}

// UpdatePortfolio updates an existing portfolio item
func (h *PortfolioHandler) UpdatePortfolio(c echo.Context) error {
	id := c.Param("id")

	var req models.UpdatePortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.portfolioRepository.GetPortfolioByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Portfolio item not found")
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Technologies != nil {
		item.Technologies = req.Technologies
	}
	if req.Skills != nil {
		item.Skills = req.Skills
	}
	if req.Link != "" {
		item.Link = req.Link
	}
	if req.Image != "" {
		item.Image = req.Image
	}

	if err := h.portfolioRepository.UpdatePortfolio(c.Request().Context(), id, item); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, item)
}

// DeletePortfolio deletes a portfolio item
func (h *PortfolioHandler) DeletePortfolio(c echo.Context) error {
	if err := h.portfolioRepository.DeletePortfolio(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Portfolio item not found")
	}
	return c.NoContent(http.StatusNoContent)
}
