package mapeditor

type Stats struct {
	Features      map[FeatureType]int `json:"features"`
	Paddocks      int                 `json:"paddocks"`
	TotalFeatures int                 `json:"total_features"`
}

func (e *Editor) Stats() Stats {
	s := Stats{Features: make(map[FeatureType]int, len(FeatureTypes)), Paddocks: len(e.paddocks)}
	for _, t := range FeatureTypes {
		n := len(e.features[t])
		s.Features[t] = n
		s.TotalFeatures += n
	}
	return s
}

// Snapshot is a read-only copy of the editor state for renderers and API
// responses.
type Snapshot struct {
	Cells            []Occupant                `json:"cells"`
	Paddocks         []Paddock                 `json:"paddocks"`
	Features         map[FeatureType][]Feature `json:"features"`
	Stats            Stats                     `json:"stats"`
	Tool             Tool                      `json:"tool"`
	SelectedPaddock  *PaddockID                `json:"selected_paddock,omitempty"`
	SelectedFeatures []FeatureID               `json:"selected_features"`
	Drag             *DragSession              `json:"drag,omitempty"`
}

func (e *Editor) Snapshot() Snapshot {
	s := Snapshot{
		Cells:            e.grid.Cells(),
		Paddocks:         e.Paddocks(),
		Features:         make(map[FeatureType][]Feature, len(FeatureTypes)),
		Stats:            e.Stats(),
		Tool:             e.tool,
		SelectedFeatures: e.SelectedFeatures(),
	}
	for _, t := range FeatureTypes {
		s.Features[t] = e.Features(t)
	}
	if id, ok := e.SelectedPaddock(); ok {
		s.SelectedPaddock = &id
	}
	if d, ok := e.Dragging(); ok {
		s.Drag = &d
	}
	return s
}

// At returns the occupant of an in-range cell.
func (s Snapshot) At(row, col int) Occupant { return s.Cells[Index(row, col)] }

func (s Snapshot) PaddockByID(id PaddockID) (Paddock, bool) {
	for _, p := range s.Paddocks {
		if p.ID == id {
			return p, true
		}
	}
	return Paddock{}, false
}
