package mcts

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"sync"

	distrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/pentamind/game"
)

// Config configures a search tree and its workers.
type Config struct {
	// Exploration is the selection exploration constant.
	Exploration Float

	// Simulations is the iteration budget of one Search call.
	Simulations int32

	// Workers is the number of parallel simulation workers, each owning a
	// private State. Defaults to the number of CPUs.
	Workers int

	// MaxTreeNodes bounds the node arena; expansions beyond it are
	// abandoned.
	MaxTreeNodes int

	// DirichletAlpha/DirichletEpsilon shape the exploration noise mixed
	// into the root children priors.
	DirichletAlpha   float64
	DirichletEpsilon Float

	Seed           int64
	LogSearch      bool
	LogSimulations bool
}

// DefaultConfig returns a workable search configuration.
func DefaultConfig() Config {
	return Config{
		Exploration:      0.7,
		Simulations:      10000,
		Workers:          runtime.NumCPU(),
		MaxTreeNodes:     262144,
		DirichletAlpha:   0.3,
		DirichletEpsilon: 0.25,
		Seed:             1,
	}
}

// IsValid reports whether the configuration can run a search.
func (c Config) IsValid() bool {
	return c.Simulations > 0 && c.Workers > 0 && c.MaxTreeNodes > 0 &&
		c.Exploration > 0
}

// Tree is the search tree: an arena of nodes addressed by naughty indices,
// the shared search constants and one State per worker. The goal is to
// build MCTS without much pointer chasing.
type Tree struct {
	sync.RWMutex
	Config
	shared *SharedConst
	states []*State
	rand   *rand.Rand

	// memory related fields
	nodes    []Node
	children [][]naughty
	freelist []naughty

	root     naughty
	playouts int32
}

// New creates a tree for the shared search constants.
func New(shared *SharedConst, conf Config) *Tree {
	// the arena is allocated at full capacity up front: node pointers
	// handed out by nodeFromNaughty must never move
	t := &Tree{
		Config:   conf,
		shared:   shared,
		rand:     rand.New(rand.NewSource(conf.Seed)),
		nodes:    make([]Node, 0, conf.MaxTreeNodes),
		children: make([][]naughty, 0, conf.MaxTreeNodes),
		root:     nilNode,
	}
	for i := 0; i < conf.Workers; i++ {
		s := NewState(shared, conf.Seed+int64(i)*7919)
		s.SetLogSimulations(conf.LogSimulations)
		t.states = append(t.states, s)
	}
	return t
}

// NumNodes returns the number of allocated nodes.
func (t *Tree) NumNodes() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.nodes)
}

// newNode creates a new node.
func (t *Tree) newNode(mv PlayerMove, value, count Float) naughty {
	n := t.alloc()
	if n == nilNode {
		return nilNode
	}
	N := t.nodeFromNaughty(n)
	N.lock.Lock()
	defer N.lock.Unlock()
	N.move = mv.Move
	N.color = mv.Color
	N.visits = 0
	N.status = uint32(Active)
	N.value = value
	N.count = count
	N.prior = value
	return n
}

// alloc tries to get a node from the free list. If none is found a new
// node is allocated into the master arena.
func (t *Tree) alloc() naughty {
	t.Lock()
	defer t.Unlock()
	l := len(t.freelist)
	if l == 0 {
		if len(t.nodes) >= cap(t.nodes) {
			return nilNode
		}
		N := Node{
			tree: ptrFromTree(t),
			id:   naughty(len(t.nodes)),
		}
		t.nodes = append(t.nodes, N)
		t.children = append(t.children, nil)
		return naughty(len(t.nodes) - 1)
	}
	i := t.freelist[l-1]
	t.freelist = t.freelist[:l-1]
	return i
}

// free puts the node back into the freelist.
//
// Because there isn't really strong reference tracking, there may be
// use-after-free issues. Any call to free() has to be done with careful
// consideration.
func (t *Tree) free(n naughty) {
	t.Lock()
	t.children[int(n)] = t.children[int(n)][:0]
	t.freelist = append(t.freelist, n)
	t.Unlock()
	N := t.nodeFromNaughty(n)
	N.reset()
}

// nodeExpander writes generated children into the arena; it implements
// NodeExpander for State.GenChildren.
type nodeExpander struct {
	t      *Tree
	parent naughty
	mover  game.Color
	added  int
}

// AddChild allocates a child node initialized with the prior pair. Reports
// false when the arena is full; the partial expansion is then rolled back
// by the caller.
func (e *nodeExpander) AddChild(mv game.Move, value, count Float) bool {
	kid := e.t.newNode(PlayerMove{Color: e.mover, Move: mv}, value, count)
	if kid == nilNode {
		return false
	}
	e.t.nodeFromNaughty(e.parent).AddChild(kid)
	e.added++
	return true
}

// rollbackChildren drops a partially generated child list.
func (t *Tree) rollbackChildren(parent naughty) {
	children := t.Children(parent)
	for _, kid := range children {
		t.nodeFromNaughty(kid).Invalidate()
		t.free(kid)
	}
	t.Lock()
	t.children[parent] = t.children[parent][:0]
	t.Unlock()
}

// Reset clears the tree for a new search. The arena keeps its capacity;
// nodes and child lists are rebuilt by the next expansions.
func (t *Tree) Reset() {
	t.Lock()
	t.freelist = t.freelist[:0]
	t.nodes = t.nodes[:0]
	t.children = t.children[:0]
	t.root = nilNode
	t.playouts = 0
	t.Unlock()
	runtime.GC()
}

// addDirichletNoise mixes Dirichlet exploration noise into the priors of
// the root children.
func (t *Tree) addDirichletNoise() {
	children := t.Children(t.root)
	if len(children) < 2 || t.DirichletEpsilon <= 0 {
		return
	}
	alpha := make([]float64, len(children))
	for i := range alpha {
		alpha[i] = t.DirichletAlpha
	}
	dist := distmv.NewDirichlet(alpha, distrand.NewSource(uint64(t.Seed)+uint64(len(children))))
	sample := dist.Rand(nil)
	eps := t.DirichletEpsilon
	for i, kid := range children {
		n := t.nodeFromNaughty(kid)
		n.lock.Lock()
		n.prior = (1-eps)*n.prior + eps*Float(sample[i])
		n.lock.Unlock()
	}
}

// Info summarizes the last search: playouts, live tree size and the value
// of the chosen move.
func (t *Tree) Info() string {
	if t.root == nilNode {
		return "no search"
	}
	root := t.nodeFromNaughty(t.root)
	best := t.bestRootMove()
	var bestValue Float
	if kid := root.findChild(best); kid != nilNode {
		bestValue = t.nodeFromNaughty(kid).Value()
	}
	return fmt.Sprintf("playouts %d, tree nodes %d, best %d (value %.3f) | %s",
		t.playouts, root.countChildren()+1, best, bestValue,
		t.states[0].GetInfo())
}

func (t *Tree) log(format string, args ...interface{}) {
	if t.LogSearch {
		log.Printf(format, args...)
	}
}
