package renormdb

// iterator holding the iterators state
type iterator struct {
	tree *energyTree
	node *energyNode
	pos  position
}

type position byte

const (
	begin, onmyway, end position = 0, 1, 2
)

// iterator returns an ascending-order iterator
//
// IMPORTANT: iterator does not provide thread safety
func (t *energyTree) iterator() iterator {
	return iterator{tree: t, node: nil, pos: begin}
}

// next moves the iterator to the next element
func (it *iterator) next() bool {
	if it.pos == end {
		it.node = nil
		return false
	}

	if it.pos == begin {
		minNode := it.min()
		if minNode == nil {
			it.node = nil
			it.pos = end
			return false
		}
		it.node = minNode
		it.pos = onmyway
		return true
	}

	if it.node.right != nil {
		it.node = it.node.right
		for it.node.left != nil {
			it.node = it.node.left
		}
		it.pos = onmyway
		return true
	}

	for it.node.parent != nil {
		node := it.node
		it.node = it.node.parent
		if node == it.node.left {
			it.pos = onmyway
			return true
		}
	}

	it.pos = end
	it.node = nil
	return false
}

// min returns the minimal node or nil
func (it *iterator) min() *energyNode {
	var minNode *energyNode
	for curNode := it.tree.root; curNode != nil; curNode = curNode.left {
		minNode = curNode
	}
	return minNode
}
