package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// ErrorHandler renders every error as the {"error": ...} envelope with the
// canonical message for its status code.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	msg, ok := errorMessages[code]
	if !ok {
		msg = http.StatusText(code)
	}

	_ = c.JSON(code, map[string]string{"error": msg})
}

// CORSHeaders attaches the permissive allow headers to every response, not
// just preflights.
func CORSHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, "*")
		h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type,Authorization,true")
		h.Set(echo.HeaderAccessControlAllowMethods, "GET,PUT,POST,DELETE,OPTIONS")
		return next(c)
	}
}
