package solver

import "github.com/robalobadob/wordle/apps/go-helper/internal/grid"

// Cell is one rendered letter slot.
type Cell struct {
	Char           string `json:"char"`
	Classification int    `json:"classification"`
}

// Snapshot is the render data for a whole grid.
type Snapshot struct {
	Rows       [][]Cell `json:"rows"`
	CurrentRow int      `json:"currentRow"`
}

func snapshotOf(g *grid.Grid) Snapshot {
	rows := make([][]Cell, g.Rows())
	for i := range rows {
		rows[i] = make([]Cell, g.Cols())
	}
	g.Each(func(row, col int, l grid.Letter) {
		c := Cell{Classification: int(l.Class)}
		if !l.IsEmpty() {
			c.Char = string(l.Char)
		}
		rows[row][col] = c
	})
	return Snapshot{Rows: rows, CurrentRow: g.CurrentRow()}
}
