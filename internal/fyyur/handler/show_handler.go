package handler

import (
	"net/http"

	"github.com/lsurvila/FSND/internal/fyyur/dto"
	"github.com/lsurvila/FSND/internal/fyyur/models"
	"github.com/labstack/echo/v4"
)

func (h *FyyurHandler) Shows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, shows)
}

func (h *FyyurHandler) NewShowForm(c echo.Context) error {
	form, err := h.svc.ShowFormData(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, form)
}

func (h *FyyurHandler) CreateShow(c echo.Context) error {
	var req dto.CreateShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VenueID == 0 || req.ArtistID == 0 || req.StartTime.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "venue_id, artist_id and start_time are required")
	}

	show := &models.Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: req.StartTime,
	}

	// A show pointing at a missing venue or artist fails the foreign-key
	// check inside the transaction and lands here as a generic failure.
	if err := h.svc.CreateShow(c.Request().Context(), show); err != nil {
		return c.JSON(http.StatusOK, dto.FlashResponse{
			Success: false,
			Flash:   "An error occurred. Show could not be listed.",
		})
	}

	return c.JSON(http.StatusOK, dto.FlashResponse{
		Success: true,
		Flash:   "Show was successfully listed!",
	})
}
