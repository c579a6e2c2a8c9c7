package domain

// CellState is the player-visible state of a single grid cell.
type CellState int8

const (
	CellUnknown CellState = iota
	CellFilled
	CellEmpty
)

// Grid is a square matrix of cell states, rows/cols 0-indexed.
type Grid [][]CellState

// NewGrid returns a size×size grid with every cell unknown.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]CellState, size)
	}
	return g
}

// Size returns the edge length of the grid.
func (g Grid) Size() int { return len(g) }

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]CellState, len(row))
		copy(out[r], row)
	}
	return out
}

// Complete reports whether every cell has been assigned.
func (g Grid) Complete() bool {
	for _, row := range g {
		for _, c := range row {
			if c == CellUnknown {
				return false
			}
		}
	}
	return true
}

// Column copies column c into a fresh slice.
func (g Grid) Column(c int) []CellState {
	col := make([]CellState, len(g))
	for r := range g {
		col[r] = g[r][c]
	}
	return col
}

// ClueSequence is the run-length encoding of a line's filled groups,
// left-to-right / top-to-bottom. The sentinel [0] means "no filled cells".
type ClueSequence []int

// Empty reports whether the sequence denotes a line with no filled cells.
func (c ClueSequence) Empty() bool {
	return len(c) == 0 || (len(c) == 1 && c[0] == 0)
}

// MinSpace is the minimum line length able to hold the sequence:
// the run sum plus one separating gap between adjacent runs.
func (c ClueSequence) MinSpace() int {
	if c.Empty() {
		return 0
	}
	n := len(c) - 1
	for _, run := range c {
		n += run
	}
	return n
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// LineRef identifies a row or column of the grid.
type LineRef struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// Deduction is a single forced cell value together with the line
// whose constraints forced it.
type Deduction struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Value     CellState `json:"value"`
	LineKind  LineKind  `json:"lineKind"`
	LineIndex int       `json:"lineIndex"`
}

// Wave is one batch of deductions discovered together in a full
// propagation pass over every row and column.
type Wave []Deduction

// Hint is a single suggested cell for the UI.
type Hint struct {
	Row  int      `json:"row"`
	Col  int      `json:"col"`
	Kind HintKind `json:"kind"`
	Line LineRef  `json:"line"`
}

// Puzzle is a generated nonogram with metadata. The solution and clues
// are immutable once generated; players work on their own Grid.
type Puzzle struct {
	ID         string         `json:"id,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Size       int            `json:"size"`
	Difficulty Difficulty     `json:"difficulty,omitempty"`
	Solution   [][]bool       `json:"solution"`
	RowClues   []ClueSequence `json:"rowClues"`
	ColClues   []ClueSequence `json:"colClues"`
	FlowScore  float64        `json:"flowScore,omitempty"`
	Unique     bool           `json:"unique"`
	// Diagnostic is set when the generator exhausted its attempt budget
	// and returned the last candidate without a uniqueness/flow guarantee.
	Diagnostic string `json:"diagnostic,omitempty"`
	CreatedAt  int64  `json:"createdAt,omitempty"`
}

// FlowAnalysis is the result of simulating a full logical solve.
// All metrics are zero when the puzzle cannot be finished by per-line
// deduction alone (Solved == false).
type FlowAnalysis struct {
	Size             int     `json:"size"`
	Solved           bool    `json:"solved"`
	Waves            []Wave  `json:"waves,omitempty"`
	EntryPoints      int     `json:"entryPoints"`
	QuadrantSpread   float64 `json:"quadrantSpread"`
	QuadrantSwitches int     `json:"quadrantSwitches"`
	SpatialVariance  float64 `json:"spatialVariance"`
	FlowScore        float64 `json:"flowScore"`
}
