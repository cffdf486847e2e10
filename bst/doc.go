// Package bst provides Tree, an unbalanced binary search tree of float64
// values that behaves as a sorted multiset.
//
// Ordering policy:
//
//   - Left subtree values are strictly less than the node value.
//   - Right subtree values are greater than or equal to it: duplicates are
//     routed right, so every occurrence is its own node.
//
// Consequences of routing duplicates right:
//
//   - Find stops at the first equal node.
//   - Count keeps descending right after each match to tally further occurrences.
//   - Remove deletes one occurrence with the classic successor algorithm:
//     a node with at most one child is replaced by that child; a node with two
//     children takes the minimum of its right subtree, which is then removed
//     from that subtree. On duplicates this removes whichever equal node the
//     descent reaches first, not the first-inserted one.
//
// Operations and complexity (h = tree height, n = size):
//
//	Add(x)       O(h)
//	Find(x)      O(h)
//	Count(x)     O(h)
//	Remove(x)    O(h)
//	Traverse()   O(n)   ascending slice, duplicates included
//	All()        O(n)   lazy ascending iterator
//	Len()        O(1)
//
// The tree is not balanced: inserting sorted input degrades h to n.
//
// NaN compares false with everything, so a NaN value is stored on the right
// spine of wherever it lands but is never found, counted or removed. Values
// added after a NaN node descend to its right and stay fully removable.
//
// A Tree is not safe for concurrent mutation.
package bst
