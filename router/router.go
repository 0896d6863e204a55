package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "pasture/pkg/auth/controller"
	editorCtrl "pasture/pkg/editor/controller"
	"pasture/pkg/middleware"
	paddockCtrl "pasture/pkg/paddock/controller"
)

func New(
	e *echo.Echo,
	requireUser bool,
	editor editorCtrl.EditorController,
	paddocks paddockCtrl.PaddockController,
	auth authCtrl.AuthController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("")
	if requireUser {
		api.Use(middleware.RequireUser(true))
	} else {
		api.Use(middleware.DevLogin())
	}

	api.GET("/whoami", auth.WhoAmI)
	api.GET("/devlogin", auth.DevLogin)

	// paddock backend
	api.GET("/potreros/api/data", paddocks.List)
	api.POST("/potreros/nuevo", paddocks.Create)
	api.POST("/potreros/:id/delete", paddocks.Delete)

	m := api.Group("/map")
	m.GET("", editor.Show)
	m.POST("/tool", editor.SelectTool)
	m.POST("/cells/:row/:col/click", editor.ClickCell)
	m.POST("/features", editor.PlaceFeature)
	m.POST("/paddocks/:id/select", editor.SelectPaddock)
	m.POST("/surface", editor.SetSurface)
	m.POST("/drag/start", editor.DragStart)
	m.POST("/drag/move", editor.DragMove)
	m.POST("/drag/end", editor.DragEnd)
	m.POST("/save", editor.Save)
	m.POST("/load", editor.Load)
	m.POST("/refresh", editor.Refresh)
	m.POST("/clear", editor.Clear)
	m.POST("/delete", editor.DeleteSelected)
	m.GET("/export.xlsx", editor.Export)
	return e
}
