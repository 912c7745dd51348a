package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pentamind/game"
)

func TestRankColors(t *testing.T) {
	var result [MaxResultColors]Float

	// two tied winners share the mean of ranks 1 and 2
	rankColors(&result, []Float{40, 40, 20})
	assert.InDelta(t, 0.75, result[0], 1e-6)
	assert.InDelta(t, 0.75, result[1], 1e-6)
	assert.InDelta(t, 0.0, result[2], 1e-6)

	// distinct scores map to 0, 1/3, 2/3, 1
	rankColors(&result, []Float{5, 20, 10, 15})
	assert.InDelta(t, 0.0, result[0], 1e-6)
	assert.InDelta(t, 1.0, result[1], 1e-6)
	assert.InDelta(t, 1.0/3, result[2], 1e-6)
	assert.InDelta(t, 2.0/3, result[3], 1e-6)

	// the results of real players always sum to n/2
	for _, scores := range [][]Float{
		{1, 2, 3},
		{7, 7, 7},
		{4, 9, 9, 2},
	} {
		rankColors(&result, scores)
		var sum Float
		for i := range scores {
			sum += result[i]
		}
		assert.InDelta(t, Float(len(scores))/2, sum, 1e-5)
	}
}

func TestRunningStats(t *testing.T) {
	var r RunningStats
	assert.Equal(t, Float(0), r.Deviation())
	r.Add(2)
	r.Add(4)
	r.Add(6)
	assert.InDelta(t, 4, r.Mean(), 1e-6)
	assert.InDelta(t, 1.63299, r.Deviation(), 1e-4)
	r.Clear()
	assert.Equal(t, Float(0), r.Mean())
}

func TestEvalBonusGuardedByDeviation(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()

	// no statistics yet: no bonus at all
	assert.Equal(t, Float(0), s.evalBonus(0, 10, 1, 20))

	for _, v := range []Float{10, 30, 50} {
		s.lenStats.Add(v)
		s.scoreStats[0].Add(v - 30)
	}
	// a shorter-than-average win gets a positive length contribution
	bonus := s.evalBonus(0, 25, 1, 10)
	assert.Greater(t, bonus, Float(0))
	// and a longer-than-average win is penalized relative to it
	assert.Less(t, s.evalBonus(0, 25, 1, 50), bonus)
}

func TestSigmoidOdd(t *testing.T) {
	assert.InDelta(t, 0, sigmoid(0), 1e-6)
	assert.InDelta(t, -sigmoid(2), sigmoid(-2), 1e-6)
	assert.Less(t, sigmoid(100), Float(1.0000001))
}
