package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pasture/entities"
	"pasture/pkg/paddock/controller"
	"pasture/pkg/paddock/service"
)

type paddockCtrl struct {
	s   service.PaddockService
	log *zap.Logger
}

func New(s service.PaddockService, log *zap.Logger) controller.PaddockController {
	if log == nil {
		log = zap.NewNop()
	}
	return &paddockCtrl{s: s, log: log.Named("paddock.http")}
}

// List serves GET /potreros/api/data.
func (h *paddockCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.Request().Context())
	if err != nil {
		h.log.Error("list paddocks", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   err.Error(),
			"data":    []entities.Paddock{},
		})
	}
	if list == nil {
		list = []entities.Paddock{}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": list, "total": len(list)})
}

func (h *paddockCtrl) Create(c echo.Context) error {
	var in service.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p, err := h.s.Create(c.Request().Context(), in)
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Los campos Nombre y Hectáreas son obligatorios"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *paddockCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	err = h.s.Delete(c.Request().Context(), uint(id))
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Potrero no encontrado"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error al eliminar el potrero"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Potrero eliminado exitosamente"})
}
