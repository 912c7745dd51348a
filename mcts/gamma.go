package mcts

import "github.com/pentamind/game"

// gammaAdjAttach is the weight multiplier for moves that occupy a cell
// adjacent to a recent-opponent attach point.
const gammaAdjAttach = 1e5

// gammaTable holds the playout move weights derived from the variant at
// search start. Sampling probability of a move is its gamma over the total.
type gammaTable struct {
	piece    []float64
	nuAttach [featGammaMaxLocal + 1]float64
}

// Init computes the per-piece and per-attach-count gammas. Large pieces and
// pieces with many attach points are preferred; the factors depend on the
// variant.
func (g *gammaTable) Init(bc *game.BoardConst, v game.Variant) {
	sizeFactor, attachFactor := 5.0, 1.0
	if v == game.VariantDuo || v == game.VariantJunior {
		sizeFactor, attachFactor = 3.0, 1.8
	}
	if cap(g.piece) < bc.NumPieces() {
		g.piece = make([]float64, bc.NumPieces())
	}
	g.piece = g.piece[:bc.NumPieces()]
	for i := range g.piece {
		p := &bc.Pieces[i]
		g.piece[i] = powf(sizeFactor, p.Size-1) * powf(attachFactor, p.NuAttach-1)
	}
	g.nuAttach[0] = 1
	for i := 1; i < len(g.nuAttach); i++ {
		g.nuAttach[i] = g.nuAttach[i-1] * 1e10
	}
}

// Of returns the gamma of a move of the given piece with the accumulated
// playout features.
func (g *gammaTable) Of(piece int16, fc *FeatureCompute) float64 {
	gamma := g.piece[piece]
	if fc.HasLocal() {
		gamma *= g.nuAttach[fc.GetNuAttach()]
		if fc.HasAdjAttach() {
			gamma *= gammaAdjAttach
		}
	}
	return gamma
}

func powf(base float64, exp int) float64 {
	r := 1.0
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
