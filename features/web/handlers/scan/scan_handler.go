package scan

import (
	"errors"
	"net/http"

	"scamurl/features/scanner"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ScanHandler struct {
	Service *scanner.Scanner
}

func NewScanHandler(service *scanner.Scanner) *ScanHandler {
	return &ScanHandler{Service: service}
}

// Scan receives a JSON body, validates, and evaluates the URL.
func (h *ScanHandler) Scan(c echo.Context) error {
	req := &ScanInput{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"validation_error": err.Error()})
	}

	rep, err := h.Service.Scan(c.Request().Context(), req.URL, scanner.Options{SkipFetch: req.SkipFetch})
	if err != nil {
		if errors.Is(err, scanner.ErrEmptyURL) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, rep)
}

// ScanByURL evaluates a URL passed as a query parameter.
func (h *ScanHandler) ScanByURL(c echo.Context) error {
	input := new(URLQueryInput)
	if err := c.Bind(input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "Failed to bind URL",
			"details": err.Error(),
		})
	}

	if err := c.Validate(input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"validation_error": err.Error(),
		})
	}

	log.Debug().Str("url", input.URL).Msg("Scanning URL")

	rep, err := h.Service.Scan(c.Request().Context(), input.URL, scanner.Options{})
	if err != nil {
		if errors.Is(err, scanner.ErrEmptyURL) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}

		log.Error().Err(err).Str("url", input.URL).Msg("Failed to scan URL")
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Failed to scan URL",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, rep)
}
