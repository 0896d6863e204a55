package maptui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding

	Tools      []key.Binding
	SelectTool key.Binding
	Click      key.Binding
	AddClick   key.Binding
	Grab       key.Binding

	Save    key.Binding
	Load    key.Binding
	Refresh key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Confirm key.Binding
	Cancel  key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "arriba")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "abajo")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "izquierda")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "derecha")),

		Tools: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bebedero")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cerca")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "río")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "camino")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "árbol")),
			key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "casa")),
		},
		SelectTool: key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s", "seleccionar")),
		Click:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "aplicar")),
		AddClick:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sumar a selección")),
		Grab:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mover potrero")),

		Save:    key.NewBinding(key.WithKeys("ctrl+s", "w"), key.WithHelp("w", "guardar")),
		Load:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "cargar")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "actualizar")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "eliminar")),
		Clear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "limpiar mapa")),
		Confirm: key.NewBinding(key.WithKeys("y", "s"), key.WithHelp("y", "confirmar")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancelar")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Grab, k.SelectTool, k.Save, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		k.Tools,
		{k.SelectTool, k.Click, k.AddClick, k.Grab},
		{k.Save, k.Load, k.Refresh, k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}
