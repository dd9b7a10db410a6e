package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lsurvila/FSND/internal/fyyur/dto"
	"github.com/lsurvila/FSND/internal/fyyur/models"
	"github.com/lsurvila/FSND/internal/fyyur/service"
	"github.com/labstack/echo/v4"
)

type FyyurHandler struct {
	svc service.FyyurService
}

func NewFyyurHandler(svc service.FyyurService) *FyyurHandler {
	return &FyyurHandler{svc: svc}
}

func (h *FyyurHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/venues", h.Venues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue)
	e.GET("/venues/:id", h.ShowVenue)

	e.GET("/artists", h.Artists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist)
	e.GET("/artists/:id", h.ShowArtist)

	e.GET("/shows", h.Shows)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow)
}

func (h *FyyurHandler) Venues(c echo.Context) error {
	board, err := h.svc.VenueBoard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, board)
}

func (h *FyyurHandler) SearchVenues(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.svc.SearchVenues(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FyyurHandler) ShowVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	detail, err := h.svc.VenueDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *FyyurHandler) NewVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewFormChoices())
}

func (h *FyyurHandler) CreateVenue(c echo.Context) error {
	var req dto.CreateVenueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.City == "" || req.State == "" || req.Address == "" ||
		req.Phone == "" || len(req.Genres) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, city, state, address, phone and genres are required")
	}

	venue := &models.Venue{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		ImageLink:          optional(req.ImageLink),
		FacebookLink:       optional(req.FacebookLink),
		Website:            optional(req.Website),
		Genres:             req.Genres,
		SeekingTalent:      req.SeekingDescription != "",
		SeekingDescription: optional(req.SeekingDescription),
	}

	if err := h.svc.CreateVenue(c.Request().Context(), venue); err != nil {
		return c.JSON(http.StatusOK, dto.FlashResponse{
			Success: false,
			Flash:   "An error occurred. Venue " + req.Name + " could not be listed.",
		})
	}

	return c.JSON(http.StatusOK, dto.FlashResponse{
		Success: true,
		Flash:   "Venue " + req.Name + " was successfully listed!",
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
