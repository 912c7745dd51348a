package game

import (
	"sort"
	"strconv"
	"sync"
)

// NumAdjStatus is the number of adjacency-status buckets the move tables
// are split into. The status is a bitmask over the first adjStatusBits edge
// neighbors of the anchor point; moves covering a masked neighbor are
// excluded from the bucket, so a lookup with the anchor's current status
// never yields a move over one of those neighbors that is already occupied
// or forbidden. Further edge neighbors (the 4th on square boards) are not
// filtered.
const (
	adjStatusBits = 3
	NumAdjStatus  = 1 << adjStatusBits
)

// BoardConst holds everything about a variant that is immutable during play:
// the geometry, the piece set and the precomputed move tables. It is built
// once per variant and shared by all boards.
type BoardConst struct {
	Variant Variant
	Geo     *Geometry
	Pieces  []Piece

	// TotalPiecePoints is the sum of cells over all piece instances of one
	// color.
	TotalPiecePoints int

	infos   []MoveInfo
	ext     []MoveInfoExt
	movesAt [][]Move // [(point*numPieces+piece)*NumAdjStatus+status]

	startingPoints [][]Point // per color
}

var (
	boardConstMu    sync.Mutex
	boardConstCache = make(map[Variant]*BoardConst)
)

// GetBoardConst returns the (cached) board constants of the variant.
func GetBoardConst(v Variant) *BoardConst {
	boardConstMu.Lock()
	defer boardConstMu.Unlock()
	if bc, ok := boardConstCache[v]; ok {
		return bc
	}
	bc := newBoardConst(v)
	boardConstCache[v] = bc
	return bc
}

func newBoardConst(v Variant) *BoardConst {
	bc := &BoardConst{
		Variant: v,
		Geo:     newGeometry(v.GetBoardType()),
		Pieces:  buildPieces(v.GetPieceSet()),
	}
	for i := range bc.Pieces {
		bc.TotalPiecePoints += bc.Pieces[i].Size * bc.Pieces[i].Instances
	}
	bc.buildMoveTables()
	bc.initStartingPoints()
	return bc
}

// NumMoves returns the size of the move index space.
func (bc *BoardConst) NumMoves() int { return len(bc.infos) }

// NumPieces returns the number of piece types.
func (bc *BoardConst) NumPieces() int { return len(bc.Pieces) }

// GetMoveInfo returns the cells and piece of mv.
func (bc *BoardConst) GetMoveInfo(mv Move) *MoveInfo { return &bc.infos[mv] }

// GetMoveInfoExt returns the attach and adjacent points of mv.
func (bc *BoardConst) GetMoveInfoExt(mv Move) *MoveInfoExt { return &bc.ext[mv] }

// MovesAt returns the placements of piece covering p whose cells avoid the
// anchor neighbors named by adjStatus.
func (bc *BoardConst) MovesAt(piece int, p Point, adjStatus int) []Move {
	idx := (int(p)*len(bc.Pieces)+piece)*NumAdjStatus + adjStatus
	return bc.movesAt[idx]
}

// GetStartingPoints returns the starting points of color c.
func (bc *BoardConst) GetStartingPoints(c Color) []Point {
	return bc.startingPoints[c]
}

func (bc *BoardConst) buildMoveTables() {
	geo := bc.Geo
	trigon := geo.IsTrigon()
	seen := make(map[string]Move)
	perAnchor := make([][]Move, geo.NumPoints*len(bc.Pieces))

	cellBuf := make([]Point, 0, 8)
	for pieceIdx := range bc.Pieces {
		piece := &bc.Pieces[pieceIdx]
		for _, o := range piece.Orientations {
			for p := Point(0); int(p) < geo.NumPoints; p++ {
				px, py := geo.X(p), geo.Y(p)
				for ci := range o.Cells {
					dx := px - int(o.Cells[ci].X)
					dy := py - int(o.Cells[ci].Y)
					if trigon && (dx+dy)%2 != 0 {
						continue
					}
					cellBuf = cellBuf[:0]
					ok := true
					for _, c := range o.Cells {
						q := geo.At(int(c.X)+dx, int(c.Y)+dy)
						if q.IsNull() {
							ok = false
							break
						}
						cellBuf = append(cellBuf, q)
					}
					if !ok {
						continue
					}
					mv := bc.internMove(seen, pieceIdx, cellBuf)
					anchors := perAnchor[int(p)*len(bc.Pieces)+pieceIdx]
					if len(anchors) == 0 || anchors[len(anchors)-1] != mv {
						perAnchor[int(p)*len(bc.Pieces)+pieceIdx] =
							append(anchors, mv)
					}
				}
			}
		}
	}
	bc.buildAdjStatusBuckets(perAnchor)
	bc.initPieceAttachCounts()
}

// internMove deduplicates placements reachable through several orientations
// or anchor cells and fills in the move metadata on first sight.
func (bc *BoardConst) internMove(seen map[string]Move, piece int, cells []Point) Move {
	sorted := append([]Point(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := make([]byte, 0, len(sorted)*4)
	key = strconv.AppendInt(key, int64(piece), 10)
	for _, q := range sorted {
		key = append(key, ':')
		key = strconv.AppendInt(key, int64(q), 10)
	}
	if mv, ok := seen[string(key)]; ok {
		return mv
	}
	mv := Move(len(bc.infos))
	seen[string(key)] = mv
	bc.infos = append(bc.infos, MoveInfo{Piece: int16(piece), Points: sorted})
	bc.ext = append(bc.ext, bc.computeExt(sorted))
	return mv
}

func (bc *BoardConst) computeExt(cells []Point) MoveInfoExt {
	geo := bc.Geo
	inMove := func(q Point) bool {
		for _, c := range cells {
			if c == q {
				return true
			}
		}
		return false
	}
	var adj, attach []Point
	contains := func(l []Point, q Point) bool {
		for _, x := range l {
			if x == q {
				return true
			}
		}
		return false
	}
	for _, c := range cells {
		for _, q := range geo.Adj(c) {
			if !inMove(q) && !contains(adj, q) {
				adj = append(adj, q)
			}
		}
	}
	for _, c := range cells {
		for _, q := range geo.Diag(c) {
			if !inMove(q) && !contains(adj, q) && !contains(attach, q) {
				attach = append(attach, q)
			}
		}
	}
	return MoveInfoExt{AttachPoints: attach, AdjPoints: adj}
}

func (bc *BoardConst) buildAdjStatusBuckets(perAnchor [][]Move) {
	geo := bc.Geo
	numPieces := len(bc.Pieces)
	bc.movesAt = make([][]Move, geo.NumPoints*numPieces*NumAdjStatus)
	for p := Point(0); int(p) < geo.NumPoints; p++ {
		adj := geo.Adj(p)
		n := len(adj)
		if n > adjStatusBits {
			n = adjStatusBits
		}
		for piece := 0; piece < numPieces; piece++ {
			full := perAnchor[int(p)*numPieces+piece]
			base := (int(p)*numPieces + piece) * NumAdjStatus
			bc.movesAt[base] = full
			for status := 1; status < NumAdjStatus; status++ {
				var filtered []Move
				for _, mv := range full {
					covers := false
					for bit := 0; bit < n && !covers; bit++ {
						if status&(1<<bit) == 0 {
							continue
						}
						for _, q := range bc.infos[mv].Points {
							if q == adj[bit] {
								covers = true
								break
							}
						}
					}
					if !covers {
						filtered = append(filtered, mv)
					}
				}
				bc.movesAt[base+status] = filtered
			}
		}
	}
}

// initPieceAttachCounts derives each piece's nominal attach-point count as
// the maximum over its placements, which is the unobstructed value away
// from the border.
func (bc *BoardConst) initPieceAttachCounts() {
	for i := range bc.ext {
		piece := &bc.Pieces[bc.infos[i].Piece]
		if n := len(bc.ext[i].AttachPoints); n > piece.NuAttach {
			piece.NuAttach = n
		}
	}
}

func (bc *BoardConst) initStartingPoints() {
	geo := bc.Geo
	v := bc.Variant
	at := func(x, y int) Point { return geo.At(x, y) }
	switch v.GetBoardType() {
	case BoardClassic:
		w, h := geo.Width-1, geo.Height-1
		all := [][]Point{
			{at(0, 0)}, {at(w, 0)}, {at(w, h)}, {at(0, h)},
		}
		bc.startingPoints = all[:v.NuColors()]
	case BoardDuo:
		// mirror images of color 0's points are color 1's, so the second
		// player can copy any first-player opening
		bc.startingPoints = [][]Point{
			{at(4, 4), at(9, 4)},
			{at(9, 9), at(4, 9)},
		}
	case BoardTrigon, BoardTrigon3:
		w, h := geo.Width-1, geo.Height-1
		half := h / 2
		// leftmost on-board column of the top and bottom rows
		var m0 int
		for x := 0; x < geo.Width; x++ {
			if !at(x, 0).IsNull() {
				m0 = x
				break
			}
		}
		if v.NuColors() == 3 {
			bc.startingPoints = [][]Point{
				{at(m0, 0), at(w-m0, h)},
				{at(w-m0, 0), at(m0, h)},
				{at(0, half), at(w, half)},
			}
		} else {
			// pairs 0/1 and 2/3 are mirror images of each other
			bc.startingPoints = [][]Point{
				{at(m0, 0), at(0, half)},
				{at(w-m0, h), at(w, h-half)},
				{at(w-m0, 0), at(w, half)},
				{at(m0, h), at(0, h-half)},
			}
		}
	}
}
