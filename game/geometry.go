package game

// Geometry describes the cell lattice of a board type: the set of on-board
// points, their coordinates and their neighborhood structure. Rectangular
// boards have 4 edge neighbors and 4 diagonal neighbors per cell. Trigon
// boards are a hexagonal outline filled with alternating up/down triangles;
// a triangle has 3 edge neighbors and up to 9 vertex neighbors.
//
// All neighborhood lists are precomputed once per board type; the hot path
// only ever indexes into them.
type Geometry struct {
	Width, Height int
	NumPoints     int

	trigon bool
	yScale float32

	index [][]Point // [y][x] -> point index or NullPoint
	x, y  []int8    // per-point coordinates
	adj   [][]Point // edge neighbors
	diag  [][]Point // diagonal (rect) or vertex (trigon) neighbors
	mirr  []Point   // image under the 180 degree rotation of the board
}

const trigonYScale = 1.732 // sqrt(3), y-distance between triangle rows

func newGeometry(bt BoardType) *Geometry {
	switch bt {
	case BoardClassic:
		return newRectGeometry(20, 20)
	case BoardDuo:
		return newRectGeometry(14, 14)
	case BoardTrigon:
		return newTrigonGeometry(35, 18)
	case BoardTrigon3:
		return newTrigonGeometry(35, 17)
	}
	panic("unknown board type")
}

func newRectGeometry(w, h int) *Geometry {
	g := &Geometry{Width: w, Height: h, yScale: 1}
	g.initIndex(func(x, y int) bool { return true })
	g.initNeighbors(
		[]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
		[]offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}},
	)
	g.initMirror()
	return g
}

// newTrigonGeometry builds the triangle lattice. A cell (x, y) is an
// upward-pointing triangle iff x+y is even. The on-board region is a
// hexagon: row y keeps columns [margin(y), w-1-margin(y)].
func newTrigonGeometry(w, h int) *Geometry {
	g := &Geometry{Width: w, Height: h, trigon: true, yScale: trigonYScale}
	half := (h - 1) / 2
	margin := func(y int) int {
		d := y
		if h-1-y < d {
			d = h - 1 - y
		}
		m := half - d
		if m < 0 {
			m = 0
		}
		return m
	}
	g.initIndex(func(x, y int) bool {
		m := margin(y)
		return x >= m && x <= w-1-m
	})
	g.initTrigonNeighbors()
	g.initMirror()
	return g
}

type offset struct{ dx, dy int }

func (g *Geometry) initIndex(onBoard func(x, y int) bool) {
	g.index = make([][]Point, g.Height)
	for y := 0; y < g.Height; y++ {
		g.index[y] = make([]Point, g.Width)
		for x := 0; x < g.Width; x++ {
			g.index[y][x] = NullPoint
			if onBoard(x, y) {
				g.index[y][x] = Point(g.NumPoints)
				g.x = append(g.x, int8(x))
				g.y = append(g.y, int8(y))
				g.NumPoints++
			}
		}
	}
}

func (g *Geometry) initNeighbors(adj, diag []offset) {
	g.adj = make([][]Point, g.NumPoints)
	g.diag = make([][]Point, g.NumPoints)
	for p := 0; p < g.NumPoints; p++ {
		x, y := int(g.x[p]), int(g.y[p])
		for _, o := range adj {
			if q := g.At(x+o.dx, y+o.dy); !q.IsNull() {
				g.adj[p] = append(g.adj[p], q)
			}
		}
		for _, o := range diag {
			if q := g.At(x+o.dx, y+o.dy); !q.IsNull() {
				g.diag[p] = append(g.diag[p], q)
			}
		}
	}
}

func (g *Geometry) initTrigonNeighbors() {
	g.adj = make([][]Point, g.NumPoints)
	g.diag = make([][]Point, g.NumPoints)
	for p := 0; p < g.NumPoints; p++ {
		x, y := int(g.x[p]), int(g.y[p])
		var adj, diag []offset
		if trigonUpward(x, y) {
			adj = []offset{{-1, 0}, {1, 0}, {0, 1}}
			diag = []offset{
				{-1, -1}, {0, -1}, {1, -1},
				{-2, 0}, {2, 0},
				{-2, 1}, {-1, 1}, {1, 1}, {2, 1},
			}
		} else {
			adj = []offset{{-1, 0}, {1, 0}, {0, -1}}
			diag = []offset{
				{-1, 1}, {0, 1}, {1, 1},
				{-2, 0}, {2, 0},
				{-2, -1}, {-1, -1}, {1, -1}, {2, -1},
			}
		}
		for _, o := range adj {
			if q := g.At(x+o.dx, y+o.dy); !q.IsNull() {
				g.adj[p] = append(g.adj[p], q)
			}
		}
		for _, o := range diag {
			if q := g.At(x+o.dx, y+o.dy); !q.IsNull() {
				g.diag[p] = append(g.diag[p], q)
			}
		}
	}
}

func (g *Geometry) initMirror() {
	g.mirr = make([]Point, g.NumPoints)
	for p := 0; p < g.NumPoints; p++ {
		x, y := int(g.x[p]), int(g.y[p])
		g.mirr[p] = g.At(g.Width-1-x, g.Height-1-y)
	}
}

// trigonUpward reports whether the triangle at (x, y) points upward.
func trigonUpward(x, y int) bool { return (x+y)%2 == 0 }

// At returns the point at (x, y) or NullPoint if off board.
func (g *Geometry) At(x, y int) Point {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return NullPoint
	}
	return g.index[y][x]
}

// X returns the column of p.
func (g *Geometry) X(p Point) int { return int(g.x[p]) }

// Y returns the row of p.
func (g *Geometry) Y(p Point) int { return int(g.y[p]) }

// Adj returns the edge neighbors of p.
func (g *Geometry) Adj(p Point) []Point { return g.adj[p] }

// Diag returns the diagonal (rect) or vertex (trigon) neighbors of p.
func (g *Geometry) Diag(p Point) []Point { return g.diag[p] }

// Mirror returns the image of p under a 180 degree rotation of the board.
func (g *Geometry) Mirror(p Point) Point { return g.mirr[p] }

// YScale returns the y-axis scaling factor for euclidean distances
// (sqrt(3) on trigon boards, 1 otherwise).
func (g *Geometry) YScale() float32 { return g.yScale }

// IsTrigon reports whether the geometry is a triangle lattice.
func (g *Geometry) IsTrigon() bool { return g.trigon }
