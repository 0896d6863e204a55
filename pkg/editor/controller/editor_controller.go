package controller

import "github.com/labstack/echo/v4"

type EditorController interface {
	Show(c echo.Context) error
	SelectTool(c echo.Context) error
	ClickCell(c echo.Context) error
	PlaceFeature(c echo.Context) error
	SelectPaddock(c echo.Context) error
	SetSurface(c echo.Context) error
	DragStart(c echo.Context) error
	DragMove(c echo.Context) error
	DragEnd(c echo.Context) error
	Save(c echo.Context) error
	Load(c echo.Context) error
	Refresh(c echo.Context) error
	Clear(c echo.Context) error
	DeleteSelected(c echo.Context) error
	Export(c echo.Context) error
}
