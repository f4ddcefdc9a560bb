package htmlsemdiff

// NodePath represents the traversal steps from the root to a target node.
// Example: [0, 1, 3] means root -> child[0] -> child[1] -> child[3]
type NodePath []int

type OpType string

const (
	OpEqual  OpType = "EQUAL"  // Token present in both versions
	OpInsert OpType = "INSERT" // Token only in the new version
	OpDelete OpType = "DELETE" // Token only in the old version
)

// Class names of the spans wrapping changed text.
const (
	InsClass = "diff-ins"
	DelClass = "diff-del"
)

// Token is the unit of comparison: a run of word characters, a run of
// whitespace, or a single other character.
type Token struct {
	Text string
	Leaf int // Index into Document.Leaves, -1 when the token has no leaf.
}

// Meaningful reports whether the token takes part in alignment, i.e. it is not
// made of whitespace only.
func (t Token) Meaningful() bool {
	return !isBlank(t.Text)
}

// Result is the outcome of a comparison.
type Result struct {
	HTML string `json:"html"`

	// Meaningful token counts.
	Equal    int `json:"equal"`
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}

// Changed reports whether the two inputs differ in their text.
func (r *Result) Changed() bool {
	return r.Inserted > 0 || r.Deleted > 0
}
