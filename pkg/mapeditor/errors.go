package mapeditor

import "errors"

var (
	ErrInvalidType      = errors.New("invalid feature type")
	ErrInvalidTool      = errors.New("invalid tool")
	ErrCellOutOfRange   = errors.New("cell out of range")
	ErrCellOccupied     = errors.New("cell occupied")
	ErrNoSpaceAvailable = errors.New("no space available")
	ErrStorage          = errors.New("storage error")
	ErrNetwork          = errors.New("network error")
	ErrUnknownPaddock   = errors.New("unknown paddock")
	ErrDuplicatePaddock = errors.New("paddock already on map")
	ErrNothingSelected  = errors.New("nothing selected")
)

// levelFor maps an editor error onto the notification level the user sees.
func levelFor(err error) Level {
	switch {
	case errors.Is(err, ErrCellOccupied),
		errors.Is(err, ErrNoSpaceAvailable),
		errors.Is(err, ErrNothingSelected),
		errors.Is(err, ErrNetwork):
		return LevelWarning
	default:
		return LevelDanger
	}
}

// messageFor returns the user-facing text for an editor error.
func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrCellOccupied):
		return "Esta posición ya está ocupada"
	case errors.Is(err, ErrCellOutOfRange):
		return "Posición inválida en el mapa"
	case errors.Is(err, ErrInvalidType), errors.Is(err, ErrInvalidTool):
		return "Herramienta no reconocida"
	case errors.Is(err, ErrNoSpaceAvailable):
		return "No hay posiciones disponibles cerca"
	case errors.Is(err, ErrStorage):
		return "Error al guardar o cargar el mapa"
	case errors.Is(err, ErrNetwork):
		return "Error al actualizar la lista"
	case errors.Is(err, ErrNothingSelected):
		return "Selecciona un elemento para eliminar"
	case errors.Is(err, ErrUnknownPaddock):
		return "Potrero no encontrado"
	case errors.Is(err, ErrDuplicatePaddock):
		return "El potrero ya existe en el mapa"
	default:
		return err.Error()
	}
}
