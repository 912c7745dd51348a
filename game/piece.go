package game

import (
	"math"
	"sort"
	"strconv"
)

// Offset is a cell of a piece shape relative to its origin cell.
type Offset struct{ X, Y int8 }

// Orientation is one distinct image of a piece shape under the board's
// symmetry group, normalized to non-negative coordinates.
type Orientation struct {
	Cells []Offset
}

// Piece is a piece type of a variant's piece set. Junior pieces come in two
// instances, all other sets have one instance per piece.
type Piece struct {
	Name      string
	Size      int
	Instances int

	// NuAttach is the number of attach points of the base shape on an
	// empty board, filled in when the move tables are built. It feeds the
	// playout gamma of the piece.
	NuAttach int

	Orientations []Orientation
}

// IsMonomino reports whether the piece is the single-cell piece.
func (p *Piece) IsMonomino() bool { return p.Size == 1 }

// PieceSet identifies the set of pieces a variant is played with.
type PieceSet uint8

// Piece sets.
const (
	PieceSetClassic PieceSet = iota
	PieceSetJunior
	PieceSetTrigon
)

// GetPieceSet returns the piece set of the variant.
func (v Variant) GetPieceSet() PieceSet {
	switch v {
	case VariantJunior:
		return PieceSetJunior
	case VariantTrigon, VariantTrigon2, VariantTrigon3:
		return PieceSetTrigon
	}
	return PieceSetClassic
}

type shapeDef struct {
	name      string
	instances int
	cells     []Offset
}

func buildPieces(set PieceSet) []Piece {
	var defs []shapeDef
	trigon := false
	switch set {
	case PieceSetClassic:
		defs = classicShapes
	case PieceSetJunior:
		defs = juniorShapes
	case PieceSetTrigon:
		defs = trigonShapes
		trigon = true
	}
	pieces := make([]Piece, len(defs))
	for i, d := range defs {
		instances := d.instances
		if instances == 0 {
			instances = 1
		}
		var orientations []Orientation
		if trigon {
			orientations = trigonOrientations(d.cells)
		} else {
			orientations = rectOrientations(d.cells)
		}
		pieces[i] = Piece{
			Name:         d.name,
			Size:         len(d.cells),
			Instances:    instances,
			Orientations: orientations,
		}
	}
	return pieces
}

// rectOrientations generates the distinct images of a polyomino under the
// 8-element symmetry group of the square grid.
func rectOrientations(cells []Offset) []Orientation {
	transforms := [8]func(x, y int) (int, int){
		func(x, y int) (int, int) { return x, y },
		func(x, y int) (int, int) { return y, -x },
		func(x, y int) (int, int) { return -x, -y },
		func(x, y int) (int, int) { return -y, x },
		func(x, y int) (int, int) { return -x, y },
		func(x, y int) (int, int) { return y, x },
		func(x, y int) (int, int) { return x, -y },
		func(x, y int) (int, int) { return -y, -x },
	}
	seen := make(map[string]bool)
	var result []Orientation
	for _, tf := range transforms {
		img := make([]Offset, len(cells))
		for i, c := range cells {
			x, y := tf(int(c.X), int(c.Y))
			img[i] = Offset{int8(x), int8(y)}
		}
		o := normalizeCells(img, false)
		key := cellsKey(o)
		if !seen[key] {
			seen[key] = true
			result = append(result, Orientation{Cells: o})
		}
	}
	return result
}

// trigonOrientations generates the distinct images of a polyiamond under
// the 12-element symmetry group of the triangle lattice. Cells are mapped
// to their cartesian centroids, rotated in multiples of 60 degrees
// (optionally reflected), and snapped back onto the lattice. Runs at
// board-constant construction only.
func trigonOrientations(cells []Offset) []Orientation {
	const h = 0.8660254037844386 // sqrt(3)/2, triangle row height
	seen := make(map[string]bool)
	var result []Orientation
	for mirror := 0; mirror < 2; mirror++ {
		for k := 0; k < 6; k++ {
			angle := float64(k) * math.Pi / 3
			cos, sin := math.Cos(angle), math.Sin(angle)
			img := make([]Offset, len(cells))
			ok := true
			for i, c := range cells {
				// centroid of the triangle in cartesian space
				cx := 0.5 * float64(c.X)
				frac := 1.0 / 3
				if trigonUpward(int(c.X), int(c.Y)) {
					frac = 2.0 / 3
				}
				cy := (float64(c.Y) + frac) * h
				if mirror == 1 {
					cx = -cx
				}
				rx := cx*cos - cy*sin
				ry := cx*sin + cy*cos
				x, y, snapOK := snapTrigon(rx, ry, h)
				if !snapOK {
					ok = false
					break
				}
				img[i] = Offset{int8(x), int8(y)}
			}
			if !ok {
				continue
			}
			o := normalizeCells(img, true)
			key := cellsKey(o)
			if !seen[key] {
				seen[key] = true
				result = append(result, Orientation{Cells: o})
			}
		}
	}
	return result
}

// snapTrigon maps a cartesian centroid back to lattice coordinates.
func snapTrigon(cx, cy, h float64) (int, int, bool) {
	x := int(math.Round(2 * cx))
	t := cy / h
	y := int(math.Floor(t + 1e-9))
	frac := t - float64(y)
	up := frac > 0.5
	if trigonUpward(x, y) != up {
		return 0, 0, false
	}
	return x, y, true
}

// normalizeCells translates cells so that min y is 0 and min x is 0 (or 1
// on trigon boards when parity requires it) and sorts them. On the
// triangle lattice only translations with even dx+dy keep each cell's
// up/down orientation.
func normalizeCells(cells []Offset, trigon bool) []Offset {
	minX, minY := int(cells[0].X), int(cells[0].Y)
	for _, c := range cells[1:] {
		if int(c.X) < minX {
			minX = int(c.X)
		}
		if int(c.Y) < minY {
			minY = int(c.Y)
		}
	}
	dx, dy := -minX, -minY
	if trigon && (dx+dy)%2 != 0 {
		dx++
	}
	out := make([]Offset, len(cells))
	for i, c := range cells {
		out[i] = Offset{int8(int(c.X) + dx), int8(int(c.Y) + dy)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func cellsKey(cells []Offset) string {
	buf := make([]byte, 0, len(cells)*6)
	for _, c := range cells {
		buf = strconv.AppendInt(buf, int64(c.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(c.Y), 10)
		buf = append(buf, ';')
	}
	return string(buf)
}
