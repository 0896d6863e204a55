package mapeditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexIsBijection(t *testing.T) {
	seen := make(map[int]bool, CellCount)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			i := Index(r, c)
			require.True(t, i >= 0 && i < CellCount, "index %d out of range", i)
			require.False(t, seen[i], "index %d produced twice", i)
			seen[i] = true

			gr, gc := Position(i)
			assert.Equal(t, r, gr)
			assert.Equal(t, c, gc)
		}
	}
	assert.Len(t, seen, CellCount)
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(19, 19))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, 20))
	assert.False(t, InBounds(20, 5))
}

func TestIsOccupiedExcludesMovingPaddock(t *testing.T) {
	e := newTestEditor()
	require.True(t, e.PlacePaddock(7, "Norte", "3 ha", 4, 4))
	_, err := e.PlaceFeature(Tree, 4, 5)
	require.NoError(t, err)

	id := PaddockID(7)
	other := PaddockID(8)
	assert.True(t, e.IsOccupied(4, 4, nil))
	assert.False(t, e.IsOccupied(4, 4, &id))
	assert.True(t, e.IsOccupied(4, 4, &other))
	assert.True(t, e.IsOccupied(4, 5, &id), "features are never excluded")
	assert.False(t, e.IsOccupied(0, 0, nil))
}

func TestBoxMapperClampsIntoGrid(t *testing.T) {
	m := BoxMapper{Left: 100, Top: 50, Width: 400, Height: 200}

	r, c := m.CellAt(100, 50)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})

	r, c = m.CellAt(100+25*20, 50+10*20)
	assert.Equal(t, [2]int{19, 19}, [2]int{r, c}, "past the box clamps to the last cell")

	r, c = m.CellAt(0, 0)
	assert.Equal(t, [2]int{0, 0}, [2]int{r, c})

	r, c = m.CellAt(100+45, 50+25)
	assert.Equal(t, [2]int{2, 2}, [2]int{r, c})

	x, y := m.CellOrigin(2, 2)
	assert.InDelta(t, 140.0, x, 1e-9)
	assert.InDelta(t, 70.0, y, 1e-9)
}

func TestFeatureCodesAreTwoASCIIColumns(t *testing.T) {
	seen := map[string]FeatureType{}
	for _, ft := range FeatureTypes {
		code := ft.Code()
		require.Len(t, code, 2, "%s", ft)
		for _, b := range []byte(code) {
			assert.True(t, b >= 0x20 && b < 0x7f, "%s code %q is not printable ASCII", ft, code)
		}
		prev, dup := seen[code]
		assert.False(t, dup, "%s and %s share %q", ft, prev, code)
		seen[code] = ft
	}
}
