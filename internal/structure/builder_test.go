package structure

import (
	"strings"
	"testing"

	"github.com/argus-nlp/argus/internal/model"
)

func cls(t model.ArgumentType, text string, strength float64) model.Classification {
	return model.Classification{SentenceText: text, ArgumentType: t, Strength: strength}
}

func TestBuild_BasicTree(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "We must act on climate change.", 0.8),
		cls(model.TypeSupport, "Because the evidence is overwhelming.", 0.7),
		cls(model.TypeCounter, "However, some disagree.", 0.5),
		cls(model.TypeNeutral, "The report came out in May.", 0.2),
	})

	if len(analysis.RootClaims) != 1 {
		t.Fatalf("expected 1 root claim, got %d", len(analysis.RootClaims))
	}

	root := analysis.RootClaims[0]
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	// Neutral nodes stay in the flat list but are never attached
	if len(analysis.Nodes) != 4 {
		t.Errorf("expected 4 nodes, got %d", len(analysis.Nodes))
	}
	for _, n := range analysis.Nodes {
		if n.ArgumentType == model.TypeNeutral && n.Parent != nil {
			t.Error("neutral node must not be attached to a tree")
		}
	}
}

func TestBuild_ChildIDInvariant(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeSupport, "Early support.", 0.9),
		cls(model.TypeClaim, "The claim.", 0.8),
		cls(model.TypeSupport, "Late support.", 0.6),
		cls(model.TypeCounter, "Late counter.", 0.5),
	})

	var check func(n *Node)
	check = func(n *Node) {
		for _, child := range n.Children {
			if child.ID <= n.ID {
				t.Errorf("child id %d not greater than parent id %d", child.ID, n.ID)
			}
			if child.Parent != n {
				t.Errorf("child %d has wrong parent back-reference", child.ID)
			}
			check(child)
		}
	}
	for _, root := range analysis.RootClaims {
		check(root)
	}

	// The early support (id 0) can never become a child of the claim (id 1)
	root := analysis.RootClaims[0]
	for _, child := range root.Children {
		if child.ID == 0 {
			t.Error("support preceding the claim must not be attached")
		}
	}
}

func TestBuild_PromotesStrongestSupport(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeSupport, "Weak support.", 0.4),
		cls(model.TypeSupport, "Strong support.", 0.9),
		cls(model.TypeSupport, "Equally strong support.", 0.9),
	})

	if len(analysis.RootClaims) != 1 {
		t.Fatalf("expected promoted root, got %d roots", len(analysis.RootClaims))
	}
	// Ties break by first occurrence
	if analysis.RootClaims[0].ID != 1 {
		t.Errorf("expected node 1 promoted, got %d", analysis.RootClaims[0].ID)
	}
	// The promoted support keeps its type and gains later supports as children
	if analysis.RootClaims[0].ArgumentType != model.TypeSupport {
		t.Errorf("promotion must not change the node type")
	}
	if len(analysis.RootClaims[0].Children) != 1 || analysis.RootClaims[0].Children[0].ID != 2 {
		t.Errorf("expected later support attached, got %+v", analysis.RootClaims[0].Children)
	}
}

func TestBuild_SharedChildrenAcrossClaims(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "First claim.", 0.8),
		cls(model.TypeClaim, "Second claim.", 0.7),
		cls(model.TypeSupport, "Shared support.", 0.6),
	})

	if len(analysis.RootClaims) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(analysis.RootClaims))
	}
	for _, root := range analysis.RootClaims {
		if len(root.Children) != 1 || root.Children[0].ID != 2 {
			t.Errorf("claim %d: expected shared support child", root.ID)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	analysis := Build(nil)

	if len(analysis.RootClaims) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(analysis.RootClaims))
	}

	stats := analysis.Stats()
	if stats.TotalNodes != 0 || stats.AvgStrength != 0 || stats.MaxDepth != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if analysis.StrongestPath() != nil {
		t.Error("expected nil strongest path")
	}
	if len(analysis.CounterargumentPairs()) != 0 {
		t.Error("expected no counter pairs")
	}
	if analysis.ASCII() != "" {
		t.Error("expected empty ASCII rendering")
	}
}

func TestStats(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "Claim.", 0.8),
		cls(model.TypeSupport, "Support.", 0.6),
		cls(model.TypeCounter, "Counter.", 0.4),
		cls(model.TypeNeutral, "Neutral.", 0.2),
	})

	stats := analysis.Stats()
	if stats.TotalNodes != 4 || stats.Claims != 1 || stats.Supports != 1 || stats.Counters != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.MaxDepth != 2 {
		t.Errorf("expected depth 2, got %d", stats.MaxDepth)
	}
	want := (0.8 + 0.6 + 0.4 + 0.2) / 4
	if diff := stats.AvgStrength - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected avg strength %.4f, got %.4f", want, stats.AvgStrength)
	}
	if stats.RootClaims != 1 {
		t.Errorf("expected 1 root claim, got %d", stats.RootClaims)
	}
}

func TestStrongestPath(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "Weak claim.", 0.4),
		cls(model.TypeClaim, "Strong claim.", 0.9),
		cls(model.TypeSupport, "Weak support.", 0.3),
		cls(model.TypeSupport, "Strong support.", 0.7),
	})

	path := analysis.StrongestPath()
	if len(path) != 2 {
		t.Fatalf("expected path of 2, got %d", len(path))
	}
	if path[0].Text != "Strong claim." {
		t.Errorf("expected strongest root first, got %q", path[0].Text)
	}
	if path[1].Text != "Strong support." {
		t.Errorf("expected strongest child second, got %q", path[1].Text)
	}
}

func TestCounterargumentPairs(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "The claim.", 0.8),
		cls(model.TypeCounter, "First counter.", 0.5),
		cls(model.TypeCounter, "Second counter.", 0.4),
	})

	pairs := analysis.CounterargumentPairs()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	for _, p := range pairs {
		if p.ClaimID != 0 {
			t.Errorf("expected claim id 0, got %d", p.ClaimID)
		}
	}
	if pairs[0].CounterID != 1 || pairs[1].CounterID != 2 {
		t.Errorf("unexpected counter ids: %d, %d", pairs[0].CounterID, pairs[1].CounterID)
	}
}

func TestASCII_TruncatesAndConnects(t *testing.T) {
	long := strings.Repeat("argument ", 10) // 90 chars
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, long, 0.8),
		cls(model.TypeSupport, "Support line.", 0.6),
		cls(model.TypeCounter, "Counter line.", 0.4),
	})

	out := analysis.ASCII()
	if !strings.Contains(out, "...") {
		t.Error("expected truncated root text")
	}
	if !strings.Contains(out, "├── [SUPPORT] Support line.") {
		t.Errorf("expected intermediate connector, got:\n%s", out)
	}
	if !strings.Contains(out, "└── [COUNTER] Counter line.") {
		t.Errorf("expected last-child connector, got:\n%s", out)
	}
}

func TestExport_CycleFree(t *testing.T) {
	analysis := Build([]model.Classification{
		cls(model.TypeClaim, "Claim.", 0.8),
		cls(model.TypeSupport, "Support.", 0.6),
	})

	trees := analysis.Export()
	if len(trees) != 1 {
		t.Fatalf("expected 1 tree, got %d", len(trees))
	}
	if trees[0].ID != 0 || len(trees[0].Children) != 1 || trees[0].Children[0].ID != 1 {
		t.Errorf("unexpected export shape: %+v", trees[0])
	}
}
