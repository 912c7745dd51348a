package mcts

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"sort"

	"github.com/pentamind/game"
)

const maxColors = 4

// PlayerMove is a move tagged with the color playing it.
type PlayerMove struct {
	Color game.Color
	Move  game.Move
}

// SharedConst is the per-search constant data shared read-only by all
// worker States.
type SharedConst struct {
	Board  *game.Board
	ToPlay game.Color

	DetectSymmetry     bool
	AvoidSymmetricDraw bool

	minMoveAllConsidered int
	isPieceConsidered    []PieceMask
	allPieces            PieceMask
}

// NewSharedConst builds the shared search constants for a root position.
func NewSharedConst(bd *game.Board, toPlay game.Color) *SharedConst {
	sc := &SharedConst{
		Board:          bd,
		ToPlay:         toPlay,
		DetectSymmetry: true,
	}
	bc := bd.GetBoardConst()
	sc.allPieces = allPiecesMask(bc.NumPieces())
	sc.isPieceConsidered, sc.minMoveAllConsidered =
		buildConsideredMasks(bc, bd.GetVariant())
	return sc
}

// State runs one playout at a time against a private working board. It is
// constructed once per worker and reused across simulations; it must never
// be shared between goroutines.
type State struct {
	shared *SharedConst
	bd     *game.Board
	rnd    *rand.Rand

	logSimulations bool

	gamma  gammaTable
	marker MoveMarker
	local  LocalityTracker

	features     [maxColors]PlayoutFeatures
	featSnapshot [maxColors][]uint32

	moveLists        [maxColors]moveList
	movesAddedAt     [maxColors][]bool
	addedAnchors     [maxColors][]game.Point
	newMoves         [maxColors][]game.Move
	lastMask         [maxColors]PieceMask
	forceConsiderAll [maxColors]bool
	isInitialized    [maxColors]bool
	hasMoves         [maxColors]bool

	prior    PriorKnowledge
	symmetry SymmetryTracker

	singleInstance      bool
	checkTerminateEarly bool

	nuPasses       int
	nuMovesInitial int
	nuSimulations  int

	lenStats   RunningStats
	scoreStats [maxColors]RunningStats
}

// NewState creates a worker state for the shared search constants. Each
// worker uses its own seed.
func NewState(shared *SharedConst, seed int64) *State {
	return &State{
		shared: shared,
		bd:     game.NewBoard(shared.Board.GetVariant()),
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Board exposes the working board, for expansion and debugging.
func (s *State) Board() *game.Board { return s.bd }

// SetLogSimulations switches per-simulation debug logging.
func (s *State) SetLogSimulations(v bool) { s.logSimulations = v }

// StartSearch initializes the search-scoped tables: working board snapshot,
// playout feature snapshots, gamma tables, symmetry detection, prior
// knowledge grids and the running statistics.
func (s *State) StartSearch() {
	bd := s.bd
	if err := bd.CopyFrom(s.shared.Board); err != nil {
		panic(err)
	}
	bd.SetToPlay(s.shared.ToPlay)
	bd.TakeSnapshot()
	bc := bd.GetBoardConst()
	v := bd.GetVariant()
	n := bc.Geo.NumPoints

	s.marker.Init(bc.NumMoves())
	s.local.Init(n)
	s.gamma.Init(bc, v)
	s.singleInstance = v.GetPieceSet() != game.PieceSetJunior
	s.checkTerminateEarly = bd.GetNuPlayers() == 2
	s.nuMovesInitial = bd.GetNuMoves()
	s.nuSimulations = 0

	for c := 0; c < bd.GetNuColors(); c++ {
		s.features[c].InitSnapshot(bd, game.Color(c))
		s.featSnapshot[c] = s.features[c].Snapshot(s.featSnapshot[c])
		if len(s.movesAddedAt[c]) != n {
			s.movesAddedAt[c] = make([]bool, n)
		}
	}
	s.prior.StartSearch(bd)
	s.symmetry.StartSearch(s.shared, bd)
	s.lenStats.Clear()
	for c := range s.scoreStats {
		s.scoreStats[c].Clear()
	}
}

// StartSimulation restores the snapshot and zeroes the per-simulation
// scratch. Move lists and anchors are cleared over their previously
// populated ranges only; the move marker is left as is, since move
// generation unmarks its moves before returning.
func (s *State) StartSimulation(n int) {
	s.nuSimulations++
	bd := s.bd
	bd.RestoreSnapshot()
	bd.SetToPlay(s.shared.ToPlay)
	for c := 0; c < bd.GetNuColors(); c++ {
		s.features[c].CopyFrom(s.featSnapshot[c])
		for _, p := range s.addedAnchors[c] {
			s.movesAddedAt[c][p] = false
		}
		s.addedAnchors[c] = s.addedAnchors[c][:0]
		s.moveLists[c].clear()
		s.newMoves[c] = s.newMoves[c][:0]
		s.isInitialized[c] = false
		s.hasMoves[c] = true
		s.forceConsiderAll[c] = false
		s.lastMask[c] = 0
	}
	s.symmetry.StartSimulation()
	s.initNuPasses()
	if s.logSimulations {
		s.logf("simulation %d", n)
	}
}

// initNuPasses counts the trailing passes of the root history. This
// assumes alternating colors in the history; non-alternating histories are
// already treated as symmetry-broken and at worst terminate a playout one
// pass late.
func (s *State) initNuPasses() {
	s.nuPasses = 0
	for i := s.bd.GetNuMoves(); i > 0; i-- {
		if !s.bd.GetMove(i - 1).Move.IsPass() {
			break
		}
		s.nuPasses++
	}
}

// GenPlayoutMove selects the next playout move by sampling the cumulative
// gamma distribution of the side to move. Returns false when the game is
// over: all colors passed, a decided position terminates early, or an
// unbroken symmetric position has run long enough to count as a draw.
func (s *State) GenPlayoutMove(pm *PlayerMove) bool {
	bd := s.bd
	nuColors := bd.GetNuColors()
	for {
		if s.nuPasses >= nuColors {
			return false
		}
		if s.symmetry.CheckDraw(bd) {
			if s.logSimulations {
				s.logf("terminate playout, symmetry not broken")
			}
			return false
		}
		c := bd.GetToPlay()
		if !s.isInitialized[c] {
			s.initMoves(c)
		} else {
			s.updateMoves(c)
		}
		ml := &s.moveLists[c]
		s.hasMoves[c] = ml.len() > 0
		if ml.len() == 0 {
			if s.checkEarlyTermination(c) {
				if s.logSimulations {
					s.logf("terminate early, no moves and losing")
				}
				return false
			}
			s.playPass()
			continue
		}
		r := s.rnd.Float64() * ml.total
		i := sort.Search(ml.len(), func(i int) bool {
			return ml.cumGamma[i] >= r
		})
		if i == ml.len() {
			i--
		}
		pm.Color = c
		pm.Move = ml.moves[i]
		return true
	}
}

// checkEarlyTermination: still early in the game, the side to move is out
// of moves with a negative score (and so is its partner where one exists),
// so the playout result is already known.
func (s *State) checkEarlyTermination(c game.Color) bool {
	if !s.checkTerminateEarly {
		return false
	}
	bd := s.bd
	if s.nuMovesInitial >= 10*bd.GetNuColors() {
		return false
	}
	if bd.GetVariant().IsTwoColorsPerPlayer() &&
		s.hasMoves[bd.GetSecondColor(c)] {
		return false
	}
	return bd.GetScore(c) < 0
}

// PlayPlayout applies a move produced by GenPlayoutMove.
func (s *State) PlayPlayout(pm PlayerMove) { s.play(pm.Move) }

// PlayExpandedChild applies a tree-selected move; a null move counts as a
// pass and breaks symmetry unconditionally.
func (s *State) PlayExpandedChild(mv game.Move) { s.play(mv) }

func (s *State) play(mv game.Move) {
	if mv.IsPass() || mv.IsNull() {
		s.playPass()
		return
	}
	bd := s.bd
	c := bd.GetToPlay()
	bd.Play(mv)
	s.symmetry.Update(bd, mv, c)
	s.markForbidden(c, mv)
	s.newMoves[c] = append(s.newMoves[c], mv)
	s.nuPasses = 0
	if s.logSimulations {
		s.logf("play %d by %d\n%v", mv, c, bd)
	}
}

func (s *State) playPass() {
	s.bd.Play(game.MovePass)
	s.nuPasses++
	s.symmetry.SetBroken()
}

// markForbidden propagates the forbidden cells of the move just played by
// c into every color's feature grid.
func (s *State) markForbidden(c game.Color, mv game.Move) {
	bd := s.bd
	info := bd.GetMoveInfo(mv)
	ext := bd.GetMoveInfoExt(mv)
	for cc := 0; cc < bd.GetNuColors(); cc++ {
		f := &s.features[cc]
		for _, p := range info.Points {
			f.SetForbidden(p)
		}
	}
	for _, p := range ext.AdjPoints {
		s.features[c].SetForbidden(p)
	}
}

// GenChildren emits initialized children for the side to move into the
// expander. Returns false only on capacity exhaustion.
func (s *State) GenChildren(expander NodeExpander, initVal Float) bool {
	bd := s.bd
	if s.nuPasses >= bd.GetNuColors() {
		return true
	}
	c := bd.GetToPlay()
	if !s.isInitialized[c] {
		s.initMoves(c)
	} else {
		s.updateMoves(c)
	}
	ml := &s.moveLists[c]
	s.hasMoves[c] = ml.len() > 0
	if ml.len() == 0 {
		return expander.AddChild(game.MovePass, initVal, 1)
	}
	return s.prior.GenChildren(bd, ml.moves, s.symmetry.Broken(), expander, initVal)
}

// NuSimulations returns the number of simulations run since StartSearch.
func (s *State) NuSimulations() int { return s.nuSimulations }

// Dump renders the working board and per-color move list sizes.
func (s *State) Dump() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%v", s.bd)
	for c := 0; c < s.bd.GetNuColors(); c++ {
		fmt.Fprintf(&buf, "moves[%d]: %d\n", c, s.moveLists[c].len())
	}
	return buf.String()
}

// GetInfo returns a one-line summary of the search statistics.
func (s *State) GetInfo() string {
	return fmt.Sprintf("simulations: %d, len: %.1f (dev %.1f), score[0]: %.1f",
		s.nuSimulations, s.lenStats.Mean(), s.lenStats.Deviation(),
		s.scoreStats[0].Mean())
}

func (s *State) logf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
