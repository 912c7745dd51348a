package mcts

import (
	"fmt"
	"sort"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

// DotGraph renders the root and its top maxChildren children as a DOT
// graph for debugging searches.
func (t *Tree) DotGraph(maxChildren int) (string, error) {
	if t.root == nilNode {
		return "", errors.New("no search tree")
	}
	g := gographviz.NewGraph()
	if err := g.SetName("mcts"); err != nil {
		return "", errors.Wrap(err, "dot graph")
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.Wrap(err, "dot graph")
	}
	rootName := nodeName(t.root)
	root := t.nodeFromNaughty(t.root)
	if err := g.AddNode("mcts", rootName, map[string]string{
		"label": fmt.Sprintf("\"root\\nvisits %d\"", root.Visits()),
	}); err != nil {
		return "", errors.Wrap(err, "dot graph")
	}

	children := append([]naughty(nil), t.Children(t.root)...)
	sort.Sort(byVisits{l: children, t: t})
	if len(children) > maxChildren {
		children = children[:maxChildren]
	}
	for _, kid := range children {
		n := t.nodeFromNaughty(kid)
		name := nodeName(kid)
		label := fmt.Sprintf("\"mv %d c%d\\nvisits %d\\nvalue %.3f\"",
			n.Move(), n.ResultColor(), n.Visits(), n.Value())
		if err := g.AddNode("mcts", name, map[string]string{"label": label}); err != nil {
			return "", errors.Wrap(err, "dot graph")
		}
		if err := g.AddEdge(rootName, name, true, nil); err != nil {
			return "", errors.Wrap(err, "dot graph")
		}
	}
	return g.String(), nil
}

func nodeName(n naughty) string { return fmt.Sprintf("n%d", int(n)) }
