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

func (h *FyyurHandler) Artists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *FyyurHandler) SearchArtists(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.svc.SearchArtists(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FyyurHandler) ShowArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	detail, err := h.svc.ArtistDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *FyyurHandler) NewArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewFormChoices())
}

func (h *FyyurHandler) CreateArtist(c echo.Context) error {
	var req dto.CreateArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.City == "" || req.State == "" || req.Phone == "" || len(req.Genres) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name, city, state, phone and genres are required")
	}

	artist := &models.Artist{
		Name:               req.Name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		ImageLink:          optional(req.ImageLink),
		FacebookLink:       optional(req.FacebookLink),
		Website:            optional(req.Website),
		Genres:             req.Genres,
		SeekingVenue:       req.SeekingDescription != "",
		SeekingDescription: optional(req.SeekingDescription),
	}

	if err := h.svc.CreateArtist(c.Request().Context(), artist); err != nil {
		return c.JSON(http.StatusOK, dto.FlashResponse{
			Success: false,
			Flash:   "An error occurred. Artist " + req.Name + " could not be listed.",
		})
	}

	return c.JSON(http.StatusOK, dto.FlashResponse{
		Success: true,
		Flash:   "Artist " + req.Name + " was successfully listed!",
	})
}
