package scan

import (
	"scamurl/features/scanner"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func MapScanRoutes(e *echo.Echo, svc *scanner.Scanner) error {
	handler := NewScanHandler(svc)

	g := e.Group("/scan")
	g.POST("/url", handler.Scan)
	g.GET("", handler.ScanByURL)

	log.Info().Msg("Scan routes mapped successfully. at /scan")

	return nil
}
