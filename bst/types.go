package bst

// node owns its two subtrees exclusively; no parent links, no sharing.
type node struct {
	value       float64
	left, right *node
}

// Tree is a binary search tree multiset of float64 values.
// The zero value is an empty tree ready to use.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// Len returns the number of stored values, duplicates included.
func (t *Tree) Len() int { return t.size }

// Empty reports whether the tree holds no values.
func (t *Tree) Empty() bool { return t.root == nil }
