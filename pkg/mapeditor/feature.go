package mapeditor

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FeatureType is a decorative or infrastructure marker kind. Values match the
// tool names used by the map palette.
type FeatureType string

const (
	WaterTrough FeatureType = "bebedero"
	Fence       FeatureType = "cerca"
	River       FeatureType = "rio"
	Road        FeatureType = "camino"
	Tree        FeatureType = "arbol"
	House       FeatureType = "casa"
)

// FeatureTypes lists every feature type in palette order.
var FeatureTypes = []FeatureType{WaterTrough, Fence, River, Road, Tree, House}

var collectionNames = map[FeatureType]string{
	WaterTrough: "bebederos",
	Fence:       "cercas",
	River:       "rios",
	Road:        "caminos",
	Tree:        "arboles",
	House:       "casas",
}

func (t FeatureType) Valid() bool {
	_, ok := collectionNames[t]
	return ok
}

// Collection is the plural key the type is stored under in a saved layout.
func (t FeatureType) Collection() string { return collectionNames[t] }

// Label is the capitalised name used in notifications.
func (t FeatureType) Label() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Code is the short marker shown on text surfaces.
func (t FeatureType) Code() string {
	switch t {
	case WaterTrough:
		return "~b"
	case Fence:
		return "=="
	case River:
		return "~~"
	case Road:
		return "::"
	case Tree:
		return "^^"
	case House:
		return "[]"
	}
	return "??"
}

// FeatureTypeFromCollection resolves a plural layout key back to its type.
func FeatureTypeFromCollection(name string) (FeatureType, bool) {
	for t, c := range collectionNames {
		if c == name {
			return t, true
		}
	}
	return "", false
}

// FeatureID identifies a placed feature. Older layouts stored millisecond
// timestamps, so numeric JSON values are accepted as well.
type FeatureID string

func (id *FeatureID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FeatureID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = FeatureID(n.String())
	return nil
}

type Feature struct {
	ID        FeatureID   `json:"id"`
	Type      FeatureType `json:"type"`
	Row       int         `json:"row"`
	Col       int         `json:"col"`
	CreatedAt time.Time   `json:"created_at"`
}

// PaddockID is the backend identity of a paddock.
type PaddockID int64

func (id PaddockID) String() string { return strconv.FormatInt(int64(id), 10) }

// UnmarshalJSON accepts both 7 and "7"; page markup carries ids as strings.
func (id *PaddockID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*id = PaddockID(n)
	return nil
}

type Paddock struct {
	ID   PaddockID `json:"id"`
	Name string    `json:"name"`
	Size string    `json:"size"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
}

// Abbrev is the three-letter upper-case marker text.
func (p Paddock) Abbrev() string {
	r := []rune(strings.ToUpper(strings.TrimSpace(p.Name)))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}

// PaddockRecord is a paddock as the backend lists it.
type PaddockRecord struct {
	ID       PaddockID `json:"id"`
	Name     string    `json:"nombre"`
	Hectares float64   `json:"hectareas"`
}

// SizeLabel renders the hectares the way the sidebar shows them.
func (r PaddockRecord) SizeLabel() string {
	return strconv.FormatFloat(r.Hectares, 'f', -1, 64) + " ha"
}
