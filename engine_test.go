package pentamind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamind/game"
)

func TestConfigValidate(t *testing.T) {
	conf := DefaultConfig("duo")
	require.NoError(t, conf.Validate())

	bad := Config{Variant: "checkers", Simulations: 0, Workers: 0, Exploration: 0}
	err := bad.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "variant")
	assert.Contains(t, msg, "Simulations")
	assert.Contains(t, msg, "Workers")
}

func TestEngineBestMoveDuo(t *testing.T) {
	conf := DefaultConfig("duo")
	conf.Simulations = 300
	conf.Workers = 2
	eng, err := NewEngine(conf)
	require.NoError(t, err)

	mv := eng.BestMove()
	require.False(t, mv.IsPass())

	// the first move must cover a starting point of color 0
	info := eng.Board().GetMoveInfo(mv)
	found := false
	for _, sp := range eng.Board().GetStartingPoints(0) {
		for _, p := range info.Points {
			if p == sp {
				found = true
			}
		}
	}
	assert.True(t, found, "first move must cover a starting point")

	eng.Play(mv)
	assert.Equal(t, game.Color(1), eng.Board().GetToPlay())

	dot, err := eng.DotGraph(5)
	require.NoError(t, err)
	assert.True(t, strings.Contains(dot, "mcts"))
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	_, err := NewEngine(Config{Variant: "duo"})
	require.Error(t, err)
}
