// Package huffman builds binary Huffman codes for the runes of a text.
//
// Codes are prefix-free: for any two symbols X and Y in a code table,
// there's a guarantee that X's code is not a prefix of Y's code.
// This is what allows the decoder to consume a bit stream greedily,
// emitting a symbol as soon as the accumulated bits match a code.
package huffman

import (
	"container/heap"
	"sort"
)

// FrequencyTable maps each symbol to the number of times it occurs.
type FrequencyTable map[rune]int

// Frequencies counts symbol occurrences in text.
// The empty text yields an empty table.
func Frequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[r]++
	}
	return freqs
}

// CodeTable maps each symbol to its code,
// a string over the alphabet {'0', '1'}.
type CodeTable map[rune]string

// Node is one node of a Huffman tree. A node is either internal,
// with exactly two children, or a leaf with no children.
// A leaf normally carries a symbol; the one exception is the
// placeholder leaf added for single-symbol inputs, which carries none.
type Node struct {
	Weight int
	Symbol rune

	// Placeholder marks a leaf with no symbol. It exists only to give
	// the sole leaf of a single-symbol tree a sibling so that the
	// symbol still gets a non-empty code.
	Placeholder bool

	Left, Right *Node

	// Order in which internal nodes were created during the merge.
	// Breaks weight ties deterministically; see Less.
	seq int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs a Huffman tree from the given frequencies and
// returns its root, or nil if the table is empty.
//
// The tree is fully determined by the frequency table: ties between
// equal weights are broken by symbol value for leaves and by merge
// order for internal nodes, never by pointer identity, so two calls
// with equal tables produce identical trees.
func Build(freqs FrequencyTable) *Node {
	if len(freqs) == 0 {
		return nil
	}

	nodes := make(nodeHeap, 0, len(freqs))
	for sym, count := range freqs {
		nodes = append(nodes, &Node{Weight: count, Symbol: sym})
	}
	// Maps iterate in random order; sort so the heap starts from the
	// same arrangement on every run.
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Symbol < nodes[j].Symbol
	})
	heap.Init(&nodes)

	// Special-case: a single distinct symbol would produce a bare leaf
	// and an empty code. Give it a zero-weight placeholder sibling so
	// the symbol codes as "0".
	if len(nodes) == 1 {
		sole := heap.Pop(&nodes).(*Node)
		heap.Push(&nodes, &Node{
			Weight: sole.Weight,
			Left:   sole,
			Right:  &Node{Placeholder: true},
		})
	}

	//  - Remove the two lightest nodes from the heap.
	//  - Merge them under a new internal node whose weight is their
	//    sum and push it back.
	//  - Repeat until one node remains: the root.
	seq := 0
	for len(nodes) > 1 {
		left := heap.Pop(&nodes).(*Node)
		right := heap.Pop(&nodes).(*Node)
		heap.Push(&nodes, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			seq:    seq,
		})
		seq++
	}

	return nodes[0]
}

// Codes walks the tree rooted at root and returns the code table:
// '0' for every left branch and '1' for every right branch on the
// path from the root to each symbol-carrying leaf. Placeholder
// leaves yield no entry. A nil root yields an empty table.
//
// The traversal keeps its own stack; even the fully skewed tree of a
// near-uniform alphabet cannot exhaust goroutine stack space.
func Codes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}

	type frame struct {
		node *Node
		path string
	}
	stack := []frame{{root, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsLeaf() {
			if f.node.Placeholder {
				continue
			}
			path := f.path
			if path == "" {
				// Root is itself a leaf. Build wraps this case, but a
				// caller-constructed tree still gets a usable code.
				path = "0"
			}
			codes[f.node.Symbol] = path
			continue
		}

		stack = append(stack, frame{f.node.Right, f.path + "1"})
		stack = append(stack, frame{f.node.Left, f.path + "0"})
	}
	return codes
}

type nodeHeap []*Node

func (ns nodeHeap) Len() int { return len(ns) }

// Less orders by weight, then leaves before internal nodes, then by
// symbol for leaves and creation order for internal nodes. This is a
// total order over every node the builder creates, which makes the
// pop sequence, and therefore the tree, reproducible.
func (ns nodeHeap) Less(i, j int) bool {
	a, b := ns[i], ns[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.IsLeaf() != b.IsLeaf() {
		return a.IsLeaf()
	}
	if a.IsLeaf() {
		return a.Symbol < b.Symbol
	}
	return a.seq < b.seq
}

func (ns nodeHeap) Swap(i, j int) {
	ns[i], ns[j] = ns[j], ns[i]
}

func (ns *nodeHeap) Push(e interface{}) {
	*ns = append(*ns, e.(*Node))
}

func (ns *nodeHeap) Pop() interface{} {
	n := len(*ns) - 1
	v := (*ns)[n]
	*ns = (*ns)[:n]
	return v
}
