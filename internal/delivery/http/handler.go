package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishdecider/backend/internal/domain"
	"github.com/dishdecider/backend/internal/infrastructure/logger"
	"github.com/dishdecider/backend/internal/usecase"
)

// MenuBuilder builds the category tree and map for a menu
type MenuBuilder interface {
	BuildFullMap(ctx context.Context, items []domain.MenuItem) (*domain.FullMap, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	menus   MenuBuilder
	engine  *usecase.NarrowingEngine
	scoring *usecase.ScoringService
	log     *logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(menus MenuBuilder, engine *usecase.NarrowingEngine, scoring *usecase.ScoringService, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		menus:   menus,
		engine:  engine,
		scoring: scoring,
		log:     log,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dishdecider-backend",
		"version": "1.0.0",
	})
}

// BuildMenuTree handles POST /api/v1/menu/tree
func (h *Handler) BuildMenuTree(c *gin.Context) {
	if h.menus == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu service not configured"})
		return
	}

	var req MenuTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidInput, err))
		return
	}

	fullMap, err := h.menus.BuildFullMap(c.Request.Context(), req.QueryMenu)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MenuTreeResponse{FullMap: fullMap})
}

// QuizTurn handles POST /api/v1/quiz/turn
func (h *Handler) QuizTurn(c *gin.Context) {
	if h.engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "narrowing engine not configured"})
		return
	}

	var req QuizTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidInput, err))
		return
	}

	paths, malformed := usecase.DecodePaths(req.SelectionPaths, usecase.PathDelimiter)
	if len(malformed) > 0 {
		h.log.Debug("ignoring malformed selection paths",
			"request_id", RequestIDFromContext(c), "paths", malformed)
	}

	result := h.engine.Turn(domain.TurnInput{
		State: domain.NarrowingState{
			PendingTop:        req.PendingTop,
			PendingCategories: req.PendingCategories,
			SelectionPaths:    paths,
			Started:           req.Started,
			Stage:             req.Stage,
		},
		PickedCats:  req.PickedCats,
		UserInput:   req.UserInput,
		CategoryMap: req.CategoryMap,
		Menu:        req.Menu,
	})

	selection, err := usecase.EncodePaths(result.State.SelectionPaths, usecase.PathDelimiter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	terminal, err := usecase.EncodePaths(result.TerminalPaths, usecase.PathDelimiter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizTurnResponse{
		Stage:                 result.State.Stage,
		Answers:               result.Answers,
		PendingTop:            result.State.PendingTop,
		PendingCategories:     result.State.PendingCategories,
		PendingCategoriesView: result.PendingCategories,
		SelectionPaths:        selection,
		TerminalPaths:         terminal,
		Started:               result.State.Started,
		FilteredItems:         result.FilteredItems,
	})
}

// ScoreDishes handles POST /api/v1/dishes/score
func (h *Handler) ScoreDishes(c *gin.Context) {
	if h.scoring == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scoring service not configured"})
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidInput, err))
		return
	}

	options := h.scoring.Options()
	if req.Policy != "" {
		options.Policy = req.Policy
	}
	if req.Sort != "" {
		options.Sort = req.Sort
	}
	if req.MaxGap != nil {
		options.MaxGap = *req.MaxGap
	}
	if err := usecase.ValidateOptions(options); err != nil {
		h.respondError(c, err)
		return
	}

	dishes, err := h.scoring.Evaluate(options, req.Menu, req.Features, req.Questions, req.Answers)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DishesResponse{Dishes: dishes})
}

// RecommendDishes handles POST /api/v1/dishes/recommend
func (h *Handler) RecommendDishes(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidInput, err))
		return
	}

	c.JSON(http.StatusOK, DishesResponse{
		Dishes: usecase.Recommend(req.Dishes, req.HistoricIDs, req.SwipedLeftIDs),
	})
}

// respondError maps domain errors to status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMalformedPath):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "details": err.Error()})
	default:
		h.log.Error("request failed", "request_id", RequestIDFromContext(c), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
