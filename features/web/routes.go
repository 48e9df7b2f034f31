package web

import (
	"scamurl/features/web/handlers/health"
	"scamurl/features/web/handlers/problem"
	"scamurl/features/web/handlers/scan"
)

// ConfigureRoutes maps every handler group onto the Echo instance.
func (app *Application) ConfigureRoutes() error {
	problem.MapRoutes(app.Echo)
	health.MapHealth(app.Echo, *app.config)

	if err := scan.MapScanRoutes(app.Echo, app.services.Scanner); err != nil {
		return err
	}

	return nil
}
