package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/student"
)

type (
	themeApi struct {
		svc *student.Service
	}

	ThemePayload struct {
		Theme student.Theme `json:"theme"`
	}
)

func registerThemeAPI(g *echo.Group, svc *student.Service) {
	api := themeApi{svc: svc}

	tg := g.Group("/theme")
	tg.GET("", api.retrieve)
	tg.PUT("", api.update)
	tg.POST("/toggle", api.toggle)
}

func (api *themeApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ThemePayload{Theme: api.svc.Theme()})
}

func (api *themeApi) update(ctx echo.Context) error {
	var data ThemePayload
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ThemePayload")
	}
	if err := api.svc.SetTheme(ctx.Request().Context(), data.Theme); err != nil {
		return errors.Wrap(err, "setting theme")
	}
	return ctx.JSON(http.StatusOK, ThemePayload{Theme: api.svc.Theme()})
}

func (api *themeApi) toggle(ctx echo.Context) error {
	theme, err := api.svc.ToggleTheme(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "toggling theme")
	}
	return ctx.JSON(http.StatusOK, ThemePayload{Theme: theme})
}
