package mapeditor

const (
	GridSize  = 20
	CellCount = GridSize * GridSize
)

type OccupantKind uint8

const (
	Empty OccupantKind = iota
	FeatureOccupant
	PaddockOccupant
)

// Occupant is what sits in a single cell. Only one of FeatureID/PaddockID is
// meaningful, depending on Kind.
type Occupant struct {
	Kind    OccupantKind `json:"kind"`
	Feature FeatureID    `json:"feature,omitempty"`
	Paddock PaddockID    `json:"paddock,omitempty"`
	Type    FeatureType  `json:"type,omitempty"`
}

func (o Occupant) IsEmpty() bool { return o.Kind == Empty }

func Index(row, col int) int { return row*GridSize + col }

func Position(index int) (row, col int) { return index / GridSize, index % GridSize }

func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return v
}

// Grid is the fixed cell matrix. It does not validate coordinates; callers
// check InBounds first.
type Grid struct {
	cells [CellCount]Occupant
}

func (g *Grid) At(row, col int) Occupant { return g.cells[Index(row, col)] }

func (g *Grid) set(row, col int, o Occupant) { g.cells[Index(row, col)] = o }

func (g *Grid) clear(row, col int) { g.cells[Index(row, col)] = Occupant{} }

// IsOccupied reports whether the cell holds a feature or a paddock other than
// excluding.
func (g *Grid) IsOccupied(row, col int, excluding *PaddockID) bool {
	o := g.At(row, col)
	switch o.Kind {
	case Empty:
		return false
	case PaddockOccupant:
		return excluding == nil || *excluding != o.Paddock
	default:
		return true
	}
}

// Cells returns a copy of every cell in index order.
func (g *Grid) Cells() []Occupant {
	out := make([]Occupant, CellCount)
	copy(out, g.cells[:])
	return out
}
