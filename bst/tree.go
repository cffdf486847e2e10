package bst

import "iter"

// Add inserts x; an equal value goes to the right subtree.
func (t *Tree) Add(x float64) {
	t.root = add(t.root, x)
	t.size++
}

func add(n *node, x float64) *node {
	if n == nil {
		return &node{value: x}
	}
	if x < n.value {
		n.left = add(n.left, x)
	} else {
		n.right = add(n.right, x)
	}

	return n
}

// Find reports whether at least one occurrence of x is stored.
func (t *Tree) Find(x float64) bool {
	for cur := t.root; cur != nil; {
		if x == cur.value {
			return true
		}
		if x < cur.value {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return false
}

// Count returns the number of stored occurrences of x.
func (t *Tree) Count(x float64) int {
	return count(t.root, x)
}

func count(n *node, x float64) int {
	switch {
	case n == nil:
		return 0
	case x == n.value:
		return 1 + count(n.right, x)
	case x < n.value:
		return count(n.left, x)
	default:
		return count(n.right, x)
	}
}

// Remove deletes at most one occurrence of x. Removing an absent value is a no-op.
func (t *Tree) Remove(x float64) {
	var removed bool
	t.root, removed = remove(t.root, x)
	if removed {
		t.size--
	}
}

func remove(n *node, x float64) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case x != x:
		// NaN never matches a stored value.
		return n, false
	case x < n.value:
		n.left, removed = remove(n.left, x)
		return n, removed
	case x != n.value:
		// x > n.value, or n.value is NaN: add routed x to the right either way.
		n.right, removed = remove(n.right, x)
		return n, removed
	}

	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	n.value = minValue(n.right)
	n.right = removeMin(n.right)

	return n, true
}

// minValue returns the leftmost value of a non-nil subtree.
func minValue(n *node) float64 {
	for n.left != nil {
		n = n.left
	}

	return n.value
}

// removeMin unlinks the leftmost node of a non-nil subtree. It is the node a
// by-value removal of minValue(n) would reach first, and it still works when
// that value is NaN.
func removeMin(n *node) *node {
	if n.left == nil {
		return n.right
	}
	n.left = removeMin(n.left)

	return n
}

// Traverse returns every stored value in ascending order, duplicates included.
// The slice is freshly allocated; it is empty (not nil) for an empty tree.
func (t *Tree) Traverse() []float64 {
	out := make([]float64, 0, t.size)
	for v := range t.All() {
		out = append(out, v)
	}

	return out
}

// All yields stored values in ascending order. Mutating the tree while
// iterating is not supported.
func (t *Tree) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		inorder(t.root, yield)
	}
}

// inorder visits left, node, right; it returns false once yield asks to stop.
func inorder(n *node, yield func(float64) bool) bool {
	if n == nil {
		return true
	}

	return inorder(n.left, yield) && yield(n.value) && inorder(n.right, yield)
}
