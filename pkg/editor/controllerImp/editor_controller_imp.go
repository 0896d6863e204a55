package controllerImp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pasture/pkg/editor/controller"
	"pasture/pkg/editor/service"
	"pasture/pkg/export"
	"pasture/pkg/mapeditor"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type editorCtrl struct {
	s   service.SessionService
	log *zap.Logger
}

func New(s service.SessionService, log *zap.Logger) controller.EditorController {
	if log == nil {
		log = zap.NewNop()
	}
	return &editorCtrl{s: s, log: log.Named("editor.http")}
}

type reply struct {
	OK            bool                     `json:"ok"`
	Result        any                      `json:"result"`
	Notifications []mapeditor.Notification `json:"notifications"`
}

type commandResult struct {
	Feature  mapeditor.FeatureID `json:"feature,omitempty"`
	Count    int                 `json:"count"`
	Snapshot mapeditor.Snapshot  `json:"snapshot"`
}

type toolReq struct {
	Tool string `json:"tool" form:"tool"`
}

type clickReq struct {
	Additive bool `json:"additive" form:"additive"`
}

type featureReq struct {
	Type mapeditor.FeatureType `json:"type" form:"type"`
	Row  int                   `json:"row" form:"row"`
	Col  int                   `json:"col" form:"col"`
}

type pointerReq struct {
	Paddock mapeditor.PaddockID  `json:"paddock"`
	X       float64              `json:"x"`
	Y       float64              `json:"y"`
	Surface *mapeditor.BoxMapper `json:"surface"`
}

func (h *editorCtrl) session(c echo.Context) (*mapeditor.Dispatcher, []mapeditor.Notification, error) {
	uid, _ := c.Get("uid").(string)
	return h.s.Session(c.Request().Context(), uid)
}

// run dispatches cmd on the caller's editor and replies with the new state.
func (h *editorCtrl) run(c echo.Context, cmd mapeditor.Command) error {
	d, notes, err := h.session(c)
	if err != nil {
		h.log.Error("open session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	res := d.Dispatch(c.Request().Context(), cmd)
	if len(notes) > 0 {
		res.Notifications = append(notes, res.Notifications...)
	}
	return c.JSON(http.StatusOK, reply{
		OK:            res.OK,
		Result:        commandResult{Feature: res.Feature, Count: res.Count, Snapshot: d.Snapshot()},
		Notifications: res.Notifications,
	})
}

func (h *editorCtrl) Show(c echo.Context) error {
	d, notes, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if notes == nil {
		notes = []mapeditor.Notification{}
	}
	return c.JSON(http.StatusOK, reply{OK: true, Result: d.Snapshot(), Notifications: notes})
}

func (h *editorCtrl) SelectTool(c echo.Context) error {
	var req toolReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdSelectTool, Tool: mapeditor.Tool(req.Tool)})
}

func (h *editorCtrl) ClickCell(c echo.Context) error {
	row, err1 := strconv.Atoi(c.Param("row"))
	col, err2 := strconv.Atoi(c.Param("col"))
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cell"})
	}
	var req clickReq
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
		}
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdClickCell, Row: row, Col: col, Additive: req.Additive})
}

func (h *editorCtrl) PlaceFeature(c echo.Context) error {
	var req featureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdPlaceFeature, Type: req.Type, Row: req.Row, Col: req.Col})
}

func (h *editorCtrl) SelectPaddock(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdSelectPaddock, Paddock: mapeditor.PaddockID(id)})
}

func (h *editorCtrl) DragStart(c echo.Context) error {
	var req pointerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdStartDrag, Paddock: req.Paddock, X: req.X, Y: req.Y, Surface: req.Surface})
}

// SetSurface records the pixel box the client draws the grid in, so later
// drag coordinates map onto the right cells.
func (h *editorCtrl) SetSurface(c echo.Context) error {
	var box mapeditor.BoxMapper
	if err := c.Bind(&box); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if box.Width <= 0 || box.Height <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "width and height must be positive"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdSetSurface, Surface: &box})
}

func (h *editorCtrl) DragMove(c echo.Context) error {
	var req pointerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdDragStep, X: req.X, Y: req.Y})
}

func (h *editorCtrl) DragEnd(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdEndDrag})
}

func (h *editorCtrl) Save(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdSave})
}

func (h *editorCtrl) Load(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdLoad})
}

func (h *editorCtrl) Refresh(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdRefresh})
}

func (h *editorCtrl) Clear(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdClearMap})
}

func (h *editorCtrl) DeleteSelected(c echo.Context) error {
	return h.run(c, mapeditor.Command{Kind: mapeditor.CmdDeleteSelected})
}

func (h *editorCtrl) Export(c echo.Context) error {
	d, _, err := h.session(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, d.Snapshot()); err != nil {
		h.log.Error("export workbook", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="mapa-potreros.xlsx"`)
	return c.Blob(http.StatusOK, xlsxType, buf.Bytes())
}
