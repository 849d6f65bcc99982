package dom

// CompareDocumentOrder returns -1, 0 or +1 according to the position of a
// relative to b in document order. The order is total over all live nodes:
//
//   - Nodes in the same tree order by structural position (the lowest common
//     ancestor's child list decides; an ancestor precedes its descendants).
//   - Nodes rooted in different Documents order by document creation index.
//   - A document-rooted tree orders before any tree without a Document root.
//   - Two distinct document-less roots order by identity hash, an arbitrary
//     but stable convention; no structural meaning is claimed across
//     disjoint trees.
//
// The comparison is read-only and recomputes ancestor chains per call, so
// it costs O(depth + siblings) and requires no bookkeeping on mutation.
func CompareDocumentOrder(a, b *Node) int {
	if a == b {
		return 0
	}

	rootA, depthA := a.rootAndDepth()
	rootB, depthB := b.rootAndDepth()

	if rootA != rootB {
		// Nodes in different trees never compare by structural position.
		docA := rootA.nodeType == DocumentNode
		docB := rootB.nodeType == DocumentNode
		switch {
		case docA && docB:
			return compareUint64(rootA.documentData.creationIndex, rootB.documentData.creationIndex)
		case docA:
			return -1
		case docB:
			return 1
		default:
			return compareUint64(rootA.Hash(), rootB.Hash())
		}
	}

	// Same tree: ascend the deeper node until both are at equal depth.
	x, y := a, b
	for i := depthA; i > depthB; i-- {
		x = x.parent
	}
	for i := depthB; i > depthA; i-- {
		y = y.parent
	}
	if x == y {
		// One node is an ancestor of the other; the ancestor comes first.
		if depthA < depthB {
			return -1
		}
		return 1
	}

	// Ascend both in lock-step until their parents coincide; that parent is
	// the lowest common ancestor.
	for x.parent != y.parent {
		x = x.parent
		y = y.parent
	}
	ancestor := x.parent

	classX, indexX := ancestor.childRank(x)
	classY, indexY := ancestor.childRank(y)
	if classX != classY {
		return compareInt(classX, classY)
	}
	return compareInt(indexX, indexY)
}

// childRank locates a node within its parent and returns an ordering class
// and an index within that class. Namespace nodes order before attributes,
// which order before children, matching XPath document order.
func (n *Node) childRank(child *Node) (class, index int) {
	switch child.nodeType {
	case NamespaceNode:
		if n.nodeType == ElementNode && n.elementData.namespaces != nil {
			for i, ns := range n.elementData.namespaces.bindings {
				if ns.AsNode() == child {
					return 0, i
				}
			}
		}
		return 0, -1
	case AttributeNode:
		if n.nodeType == ElementNode && n.elementData.attributes != nil {
			for i, attr := range n.elementData.attributes.attrs {
				if attr.AsNode() == child {
					return 1, i
				}
			}
		}
		return 1, -1
	default:
		for i, node := range n.children {
			if node == child {
				return 2, i
			}
		}
		return 2, -1
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
