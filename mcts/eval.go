package mcts

import "github.com/pentamind/game"

// MaxResultColors is the size of the evaluation result array; large enough
// for every variant including the duplicated entries of Classic-3.
const MaxResultColors = 6

// EvaluatePlayout maps the terminal (or early-terminated) position to a
// per-color result in [0, 1] plus length and score bonuses following
// Pepels et al. (ECAI 2014). Shorter wins and higher scores than the
// running averages are rewarded.
func (s *State) EvaluatePlayout(result *[MaxResultColors]Float) {
	bd := s.bd
	length := Float(bd.GetNuMoves() - s.nuMovesInitial)
	v := bd.GetVariant()
	switch {
	case v == game.VariantDuo || v == game.VariantJunior:
		s.evaluateTwoPlayer(result, length, false)
	case v.IsTwoColorsPerPlayer():
		s.evaluateTwoPlayer(result, length, true)
	default:
		s.evaluateMultiplayer(result, length)
	}
	if s.logSimulations {
		s.logf("result: %v", result[:bd.GetNuColors()])
	}
}

// evaluateTwoPlayer handles Duo/Junior (one color per player) and
// Classic-2/Trigon-2 (two colors per player). The result is computed for
// color 0 and mirrored so result[0]+result[1] is exactly 1.
func (s *State) evaluateTwoPlayer(result *[MaxResultColors]Float, length Float, twoColors bool) {
	bd := s.bd
	if s.symmetry.CheckDraw(bd) {
		result[0], result[1] = 0.5, 0.5
		if twoColors {
			result[2], result[3] = 0.5, 0.5
		}
		return
	}
	score := Float(bd.GetScore(0))
	var r Float
	switch {
	case score > 0:
		r = 1
	case score < 0:
		r = 0
	default:
		r = 0.5
	}
	r += s.evalBonus(0, score, r, length)
	result[0], result[1] = r, 1-r
	if twoColors {
		result[2], result[3] = r, 1-r
	}
	s.lenStats.Add(length)
	s.scoreStats[0].Add(score)
	s.scoreStats[1].Add(-score)
}

// evaluateMultiplayer ranks the colors by score; rank i maps to i/(n-1)
// and ties share the mean of their ranks. Classic-3 duplicates the three
// results into the upper half of the array.
func (s *State) evaluateMultiplayer(result *[MaxResultColors]Float, length Float) {
	bd := s.bd
	n := bd.GetNuColors()
	var scores [maxColors]Float
	for c := 0; c < n; c++ {
		scores[c] = Float(bd.GetScore(game.Color(c)))
	}
	rankColors(result, scores[:n])
	for c := 0; c < n; c++ {
		raw := Float(0.5)
		if result[c] == 1 {
			raw = 1
		} else if result[c] == 0 {
			raw = 0
		}
		result[c] += s.evalBonus(game.Color(c), scores[c], raw, length)
	}
	if bd.GetVariant() == game.VariantClassic3 {
		result[3], result[4], result[5] = result[0], result[1], result[2]
	}
	s.lenStats.Add(length)
	for c := 0; c < n; c++ {
		s.scoreStats[c].Add(scores[c])
	}
}

// rankColors writes the rank-based result for each color: ascending score
// rank i gives i/(n-1), tied colors get the mean of their tied ranks.
func rankColors(result *[MaxResultColors]Float, scores []Float) {
	n := len(scores)
	for c := 0; c < n; c++ {
		below, equal := 0, 0
		for o := 0; o < n; o++ {
			if o == c {
				continue
			}
			if scores[o] < scores[c] {
				below++
			} else if scores[o] == scores[c] {
				equal++
			}
		}
		rank := (Float(below) + Float(below+equal)) / 2
		result[c] = rank / Float(n-1)
	}
}

// evalBonus is the antisymmetric result bonus for one color: a length term
// (negated for wins, shorter wins count more) and a score term, both
// shaped by an odd sigmoid against the running statistics. Guarded by
// deviation > 0 so the first simulations run bonus-free.
func (s *State) evalBonus(c game.Color, score, raw, length Float) Float {
	var bonus Float
	if raw != 0.5 {
		if dev := s.lenStats.Deviation(); dev > 0 {
			b := Float(0.06) * sigmoid((length-s.lenStats.Mean())/dev)
			if raw == 1 {
				bonus -= b
			} else {
				bonus += b
			}
		}
	}
	if dev := s.scoreStats[c].Deviation(); dev > 0 {
		bonus += Float(0.3) * sigmoid((score-s.scoreStats[c].Mean())/dev)
	}
	return bonus
}
