package structure

import (
	"strings"

	"github.com/argus-nlp/argus/internal/model"
)

const asciiTruncateLen = 60

// ASCII renders the forest depth-first with prefix-based connectors,
// truncating sentence text beyond 60 characters.
func (a *Analysis) ASCII() string {
	return ASCIITree(a.Export())
}

// ASCIITree renders exported trees, so cached reports can be drawn
// without rebuilding the analysis.
func ASCIITree(roots []model.TreeNode) string {
	var trees []string
	for _, root := range roots {
		trees = append(trees, renderNode(root, "", true))
	}
	return strings.Join(trees, "\n")
}

func renderNode(n model.TreeNode, prefix string, isLast bool) string {
	connector := "├── "
	extension := "│   "
	if isLast {
		connector = "└── "
		extension = "    "
	}

	lines := []string{prefix + connector + "[" + string(n.ArgumentType) + "] " + truncate(n.Text)}
	for i, child := range n.Children {
		lines = append(lines, renderNode(child, prefix+extension, i == len(n.Children)-1))
	}
	return strings.Join(lines, "\n")
}

func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= asciiTruncateLen {
		return text
	}
	return string(runes[:asciiTruncateLen]) + "..."
}
