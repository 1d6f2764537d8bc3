package life

import (
	"fmt"
	"image/color"

	"golang.org/x/sync/errgroup"
)

// Config describes a grid. Width, Height and Margin only position the display
// anchors of the cells; when Width or Height is zero cells sit on a unit
// lattice. Workers > 1 spreads the compute phase of Update across goroutines.
type Config struct {
	Rows    int
	Cols    int
	Mode    Mode
	Rule    string
	Width   float32
	Height  float32
	Margin  float32
	Workers int
}

// Validate reports the first configuration problem, if any.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return &ConfigError{Field: "rows", Value: fmt.Sprint(c.Rows), Err: ErrInvalidDimensions}
	}
	if c.Cols <= 0 {
		return &ConfigError{Field: "cols", Value: fmt.Sprint(c.Cols), Err: ErrInvalidDimensions}
	}
	if _, ok := modeNames[c.Mode]; !ok {
		return &ConfigError{Field: "mode", Value: c.Mode.String(), Err: ErrUnknownMode}
	}
	if c.Mode == RuleBased {
		if _, err := ParseRule(c.Rule); err != nil {
			return err
		}
	}
	return nil
}

// CellSize returns the width and height of one cell on the display lattice.
func (c Config) CellSize() (float32, float32) {
	if c.Width <= 0 || c.Height <= 0 || c.Rows <= 0 || c.Cols <= 0 {
		return 1, 1
	}
	return (c.Width - 2*c.Margin) / float32(c.Cols), (c.Height - 2*c.Margin) / float32(c.Rows)
}

// Seed places a state at a zero-based grid position.
type Seed struct {
	Row   int
	Col   int
	State State
}

// Pos is a zero-based grid position.
type Pos struct {
	Row int
	Col int
}

// Cell is a read-only copy of one grid cell.
type Cell struct {
	row, col  int
	x, y      float32
	state     State
	age       int
	alive     bool
	color     color.RGBA
	neighbors [8]int
}

func (c Cell) Row() int                   { return c.row }
func (c Cell) Col() int                   { return c.col }
func (c Cell) Pos() Pos                   { return Pos{Row: c.row, Col: c.col} }
func (c Cell) Anchor() (float32, float32) { return c.x, c.y }
func (c Cell) State() State               { return c.state }
func (c Cell) Age() int                   { return c.age }
func (c Cell) Alive() bool                { return c.alive }
func (c Cell) Color() color.RGBA          { return c.color }

// staged holds the result of the compute phase until it is committed.
type staged struct {
	state State
	age   int
}

// Grid is a fixed toroidal lattice of cells stored row-major. Each cell keeps
// the indices of its eight neighbours, computed once by New.
type Grid struct {
	cfg  Config
	rule Rule

	rows, cols int
	cells      []Cell
	next       []staged
	generation int
}

// New validates cfg and builds the grid with every cell Dead.
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := NewRule(cfg.Mode, cfg.Rule)
	if err != nil {
		return nil, err
	}
	return newGrid(cfg, rule), nil
}

func newGrid(cfg Config, rule Rule) *Grid {
	g := &Grid{
		cfg:   cfg,
		rule:  rule,
		rows:  cfg.Rows,
		cols:  cfg.Cols,
		cells: make([]Cell, cfg.Rows*cfg.Cols),
		next:  make([]staged, cfg.Rows*cfg.Cols),
	}
	cw, ch := cfg.CellSize()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := &g.cells[g.index(r, c)]
			cell.row, cell.col = r, c
			cell.x = cfg.Margin + float32(c)*cw
			cell.y = cfg.Margin + float32(r)*ch
			for k, p := range g.neighborPositions(r, c) {
				cell.neighbors[k] = g.index(p.Row, p.Col)
			}
			g.setState(cell, Dead)
		}
	}
	return g
}

func (g *Grid) index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Initialize applies seeds in order; a later seed for the same position wins.
// The whole batch is checked first and nothing is applied if any entry is out
// of bounds or holds a state the grid's mode does not allow.
func (g *Grid) Initialize(seeds []Seed) error {
	for i, s := range seeds {
		if !g.InBounds(s.Row, s.Col) {
			return &SeedError{Index: i, Seed: s, Err: ErrSeedOutOfBounds}
		}
		if !g.cfg.Mode.Allows(s.State) {
			return &SeedError{Index: i, Seed: s, Err: fmt.Errorf("%w: %v in mode %v", ErrSeedState, s.State, g.cfg.Mode)}
		}
	}
	for _, s := range seeds {
		g.setState(&g.cells[g.index(s.Row, s.Col)], s.State)
	}
	return nil
}

// SetState force-sets the cell at (row, col). It fails like Initialize for an
// off-grid position or a state the mode does not allow.
func (g *Grid) SetState(row, col int, s State) error {
	return g.Initialize([]Seed{{Row: row, Col: col, State: s}})
}

// Reset forces every cell to Dead and rewinds the generation counter.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.setState(&g.cells[i], Dead)
	}
	g.generation = 0
}

// Update advances the whole grid by one generation. Every cell's next state
// is computed from committed neighbour states before any cell is committed.
func (g *Grid) Update() {
	if err := g.compute(); err != nil {
		panic(err)
	}
	for i := range g.cells {
		g.commit(&g.cells[i], g.next[i])
	}
	g.generation++
}

func (g *Grid) compute() error {
	workers := g.cfg.Workers
	if workers > g.rows {
		workers = g.rows
	}
	if workers <= 1 {
		g.computeRows(0, g.rows)
		return nil
	}
	var eg errgroup.Group
	band := (g.rows + workers - 1) / workers
	for start := 0; start < g.rows; start += band {
		end := min(start+band, g.rows)
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("life: rows %d-%d: %v", start, end, r)
				}
			}()
			g.computeRows(start, end)
			return nil
		})
	}
	return eg.Wait()
}

func (g *Grid) computeRows(start, end int) {
	for i := start * g.cols; i < end*g.cols; i++ {
		c := &g.cells[i]
		var n [8]State
		for k, idx := range c.neighbors {
			n[k] = g.cells[idx].state
		}
		st, age := g.rule.Next(c.state, c.age, n)
		g.next[i] = staged{state: st, age: age}
	}
}

func (g *Grid) commit(c *Cell, s staged) {
	mustAllow(g.cfg.Mode, s.state)
	c.state = s.state
	c.age = s.age
	c.alive = g.rule.Alive(s.state)
	c.color = g.rule.Color(s.state)
}

// setState force-sets a cell. Forcing Dead also clears the age.
func (g *Grid) setState(c *Cell, s State) {
	c.state = s
	if s == Dead {
		c.age = 0
	}
	c.alive = g.rule.Alive(s)
	c.color = g.rule.Color(s)
}

// Cell returns a copy of the cell at (row, col). It panics when the position
// is off the grid.
func (g *Grid) Cell(row, col int) Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.cells[g.index(row, col)]
}

// Neighbors returns the positions wired as neighbours of (row, col).
func (g *Grid) Neighbors(row, col int) [8]Pos {
	c := g.Cell(row, col)
	var out [8]Pos
	for k, idx := range c.neighbors {
		out[k] = g.cells[idx].Pos()
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for i := range g.cells {
		fn(g.cells[i])
	}
}

// States appends the committed state code of every cell to dst, row-major.
func (g *Grid) States(dst []uint8) []uint8 {
	for i := range g.cells {
		dst = append(dst, uint8(g.cells[i].state))
	}
	return dst
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].alive {
			n++
		}
	}
	return n
}

// Census counts cells per non-dead state.
func (g *Grid) Census() map[State]int {
	out := map[State]int{}
	for i := range g.cells {
		if s := g.cells[i].state; s != Dead {
			out[s]++
		}
	}
	return out
}

func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) Cols() int       { return g.cols }
func (g *Grid) Mode() Mode      { return g.cfg.Mode }
func (g *Grid) Config() Config  { return g.cfg }
func (g *Grid) Generation() int { return g.generation }

// SetWorkers changes how many goroutines compute a generation.
func (g *Grid) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	g.cfg.Workers = n
}
