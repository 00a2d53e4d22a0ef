// Package structure assembles classified sentences into a shallow argument
// forest: one tree per claim, with later support and counter sentences
// attached as children.
package structure

import (
	"github.com/argus-nlp/argus/internal/model"
)

// Node is one argument in the forest. Children are owned by the node; the
// parent pointer is a non-owning back-reference (nil for roots).
type Node struct {
	ID           int
	Text         string
	ArgumentType model.ArgumentType
	Strength     float64
	Emotionality float64
	Children     []*Node
	Parent       *Node
}

// addChild attaches a child and sets its back-reference
func (n *Node) addChild(child *Node) {
	n.Children = append(n.Children, child)
	child.Parent = n
}

// Analysis is the built forest plus the flat node list
type Analysis struct {
	Nodes      []*Node // One per classification, in doc_id order
	RootClaims []*Node
}

// Build assembles the forest from classifications. Node IDs equal the
// classification's position index, which matches the sentence doc_id.
//
// Attachment is heuristic: every support or counter node becomes a child
// of every claim that precedes it in the text, so children lists may share
// members across trees. When no claim exists, the strongest support is
// promoted to act as the sole claim (first occurrence wins ties). Empty or
// claim-and-support-free input yields an empty root list.
func Build(classifications []model.Classification) *Analysis {
	nodes := make([]*Node, 0, len(classifications))
	for idx, cls := range classifications {
		nodes = append(nodes, &Node{
			ID:           idx,
			Text:         cls.SentenceText,
			ArgumentType: cls.ArgumentType,
			Strength:     cls.Strength,
			Emotionality: cls.Emotionality,
		})
	}

	var claims, supports, counters []*Node
	for _, n := range nodes {
		switch n.ArgumentType {
		case model.TypeClaim:
			claims = append(claims, n)
		case model.TypeSupport:
			supports = append(supports, n)
		case model.TypeCounter:
			counters = append(counters, n)
		}
	}

	if len(claims) == 0 && len(supports) > 0 {
		strongest := supports[0]
		for _, s := range supports[1:] {
			if s.Strength > strongest.Strength {
				strongest = s
			}
		}
		claims = []*Node{strongest}
	}

	for _, claim := range claims {
		for _, support := range supports {
			if support.ID > claim.ID {
				claim.addChild(support)
			}
		}
		for _, counter := range counters {
			if counter.ID > claim.ID {
				claim.addChild(counter)
			}
		}
	}

	return &Analysis{Nodes: nodes, RootClaims: claims}
}

// Stats aggregates the forest. Empty input reports zeros throughout.
func (a *Analysis) Stats() model.TreeStats {
	stats := model.TreeStats{
		TotalNodes: len(a.Nodes),
		RootClaims: len(a.RootClaims),
	}

	var sumStrength float64
	for _, n := range a.Nodes {
		switch n.ArgumentType {
		case model.TypeClaim:
			stats.Claims++
		case model.TypeSupport:
			stats.Supports++
		case model.TypeCounter:
			stats.Counters++
		}
		sumStrength += n.Strength
	}

	if stats.TotalNodes > 0 {
		stats.AvgStrength = sumStrength / float64(stats.TotalNodes)
	}

	for _, root := range a.RootClaims {
		if d := depth(root); d > stats.MaxDepth {
			stats.MaxDepth = d
		}
	}

	return stats
}

// depth is the node count along the longest root-to-leaf path
func depth(n *Node) int {
	max := 0
	for _, child := range n.Children {
		if d := depth(child); d > max {
			max = d
		}
	}
	return 1 + max
}

// StrongestPath starts at the highest-strength root and repeatedly
// descends into the highest-strength child until a leaf.
func (a *Analysis) StrongestPath() []model.PathStep {
	if len(a.RootClaims) == 0 {
		return nil
	}

	current := a.RootClaims[0]
	for _, root := range a.RootClaims[1:] {
		if root.Strength > current.Strength {
			current = root
		}
	}

	var path []model.PathStep
	for {
		path = append(path, model.PathStep{
			ID:           current.ID,
			ArgumentType: current.ArgumentType,
			Text:         current.Text,
			Strength:     current.Strength,
		})
		if len(current.Children) == 0 {
			return path
		}
		next := current.Children[0]
		for _, child := range current.Children[1:] {
			if child.Strength > next.Strength {
				next = child
			}
		}
		current = next
	}
}

// CounterargumentPairs lists (claim, counter) for every direct COUNTER
// child of every root claim.
func (a *Analysis) CounterargumentPairs() []model.CounterPair {
	var pairs []model.CounterPair
	for _, claim := range a.RootClaims {
		for _, child := range claim.Children {
			if child.ArgumentType == model.TypeCounter {
				pairs = append(pairs, model.CounterPair{
					ClaimID:     claim.ID,
					ClaimText:   claim.Text,
					CounterID:   child.ID,
					CounterText: child.Text,
				})
			}
		}
	}
	return pairs
}

// Export converts the forest into its cycle-free report form
func (a *Analysis) Export() []model.TreeNode {
	trees := make([]model.TreeNode, 0, len(a.RootClaims))
	for _, root := range a.RootClaims {
		trees = append(trees, exportNode(root))
	}
	return trees
}

func exportNode(n *Node) model.TreeNode {
	out := model.TreeNode{
		ID:           n.ID,
		ArgumentType: n.ArgumentType,
		Text:         n.Text,
		Strength:     n.Strength,
		Emotionality: n.Emotionality,
		Children:     make([]model.TreeNode, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, exportNode(child))
	}
	return out
}
