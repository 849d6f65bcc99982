package xpath

import (
	"sort"

	"github.com/lmorillas/amara/dom"
)

// SortDocumentOrder sorts the node set in place into document order. Nodes
// from different trees group by tree, documents in creation order first.
func SortDocumentOrder(nodes []*dom.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return dom.CompareDocumentOrder(nodes[i], nodes[j]) < 0
	})
}

// Uniq sorts the node set into document order and removes duplicate nodes
// (by identity), returning the compacted set.
func Uniq(nodes []*dom.Node) []*dom.Node {
	SortDocumentOrder(nodes)
	out := nodes[:0]
	var last *dom.Node
	for _, n := range nodes {
		if n != last {
			out = append(out, n)
			last = n
		}
	}
	return out
}
