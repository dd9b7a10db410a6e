package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsurvila/FSND/internal/trivia/dto"
	"github.com/lsurvila/FSND/internal/trivia/models"
	"github.com/lsurvila/FSND/internal/trivia/service"
	"github.com/labstack/echo/v4"
)

type TriviaHandler struct {
	svc service.TriviaService
}

func NewTriviaHandler(svc service.TriviaService) *TriviaHandler {
	return &TriviaHandler{svc: svc}
}

func (h *TriviaHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.PostQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:id/questions", h.GetQuestionsOfCategory)
	e.POST("/quizzes", h.PostQuizzes)
}

func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	envelope, err := h.svc.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, envelope)
}

// PostQuestions serves two request shapes: a searchTerm payload runs a
// substring search, anything else is a create.
func (h *TriviaHandler) PostQuestions(c echo.Context) error {
	var req dto.PostQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	}

	if req.SearchTerm != "" {
		envelope, err := h.svc.SearchQuestions(c.Request().Context(), req.SearchTerm, pageParam(c))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
		return c.JSON(http.StatusOK, envelope)
	}

	question := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.svc.CreateQuestion(c.Request().Context(), question); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, "bad request")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	}

	if err := h.svc.DeleteQuestion(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "unprocessable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.svc.Categories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

func (h *TriviaHandler) GetQuestionsOfCategory(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	}

	envelope, err := h.svc.QuestionsByCategory(c.Request().Context(), uint(id), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, envelope)
}

func (h *TriviaHandler) PostQuizzes(c echo.Context) error {
	var req dto.QuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad request")
	}

	question, err := h.svc.QuizQuestion(c.Request().Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, dto.ToQuizResponse(question))
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
