package renormdb

import "fmt"

type color bool

const (
	black, red color = true, false
)

// energyTree counts configuration multiplicities per energy value.
// Ordered by energy so the report can walk keys ascending.
type energyTree struct {
	root *energyNode
	size int
}

// energyNode is a tree element
type energyNode struct {
	energy int
	count  int
	color  color
	left   *energyNode
	right  *energyNode
	parent *energyNode
}

func newEnergyTree() *energyTree {
	return &energyTree{}
}

// add counts one more configuration at energy. A missing key starts
// an implicit zero before the first increment.
func (t *energyTree) add(energy int) {
	if t.root == nil {
		t.root = &energyNode{energy: energy, count: 1, color: black}
		t.size++
		return
	}

	curNode := t.root
	for true {
		switch {
		case energy == curNode.energy:
			curNode.count++
			return
		case energy < curNode.energy:
			if curNode.left == nil {
				curNode.left = &energyNode{energy: energy, count: 1, color: red}
				curNode.left.parent = curNode
				t.insertCase1(curNode.left)
				t.size++
				return
			}
			curNode = curNode.left
		case energy > curNode.energy:
			if curNode.right == nil {
				curNode.right = &energyNode{energy: energy, count: 1, color: red}
				curNode.right.parent = curNode
				t.insertCase1(curNode.right)
				t.size++
				return
			}
			curNode = curNode.right
		}
	}
}

// get searches the node for energy, nil if not counted yet
func (t *energyTree) get(energy int) *energyNode {
	curNode := t.root
	for curNode != nil {
		switch {
		case energy == curNode.energy:
			return curNode
		case energy < curNode.energy:
			curNode = curNode.left
		default:
			curNode = curNode.right
		}
	}
	return nil
}

// sizeof returns the number of distinct energy values
func (t *energyTree) sizeof() int {
	return t.size
}

// total returns the sum of all counts
func (t *energyTree) total() int {
	sum := 0
	it := t.iterator()
	for it.next() {
		sum += it.node.count
	}
	return sum
}

// ascend walks the counted energies in ascending order
func (t *energyTree) ascend(f func(energy, count int)) {
	it := t.iterator()
	for it.next() {
		f(it.node.energy, it.node.count)
	}
}

// String implements Stringer interface
func (t *energyTree) String() string {
	str := "energyTree\n"
	if t.root != nil {
		output(t.root, "", true, &str)
	}
	return str
}

func (n *energyNode) String() string {
	return fmt.Sprintf("%d x Exp[%d k]", n.count, n.energy)
}

func output(node *energyNode, prefix string, isTail bool, str *string) {
	if node.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		output(node.right, newPrefix, false, str)
	}

	*str += prefix
	if isTail {
		*str += "└── "
	} else {
		*str += "┌── "
	}

	*str += node.String() + "\n"
	if node.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		output(node.left, newPrefix, true, str)
	}
}

func (n *energyNode) grandparent() *energyNode {
	if n != nil && n.parent != nil {
		return n.parent.parent
	}
	return nil
}

func (n *energyNode) uncle() *energyNode {
	if n == nil || n.parent == nil || n.parent.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

func (n *energyNode) sibling() *energyNode {
	if n == nil || n.parent == nil {
		return nil
	}
	if n == n.parent.left {
		return n.parent.right
	}
	return n.parent.left
}

func nodeColor(n *energyNode) color {
	if n == nil {
		return black
	}
	return n.color
}

func (t *energyTree) rotateLeft(node *energyNode) {
	right := node.right
	t.replaceNode(node, right)
	node.right = right.left
	if right.left != nil {
		right.left.parent = node
	}
	right.left = node
	node.parent = right
}

func (t *energyTree) rotateRight(node *energyNode) {
	left := node.left
	t.replaceNode(node, left)
	node.left = left.right
	if left.right != nil {
		left.right.parent = node
	}
	left.right = node
	node.parent = left
}

func (t *energyTree) replaceNode(old *energyNode, new *energyNode) {
	if old.parent == nil {
		t.root = new
	} else {
		if old == old.parent.left {
			old.parent.left = new
		} else {
			old.parent.right = new
		}
	}
	if new != nil {
		new.parent = old.parent
	}
}

func (t *energyTree) insertCase1(node *energyNode) {
	if node.parent == nil {
		node.color = black
	} else {
		t.insertCase2(node)
	}
}

func (t *energyTree) insertCase2(node *energyNode) {
	if nodeColor(node.parent) == black {
		return
	}
	t.insertCase3(node)
}

func (t *energyTree) insertCase3(node *energyNode) {
	uncleNode := node.uncle()
	if nodeColor(uncleNode) == red {
		node.parent.color = black
		uncleNode.color = black
		node.grandparent().color = red
		t.insertCase1(node.grandparent())
	} else {
		t.insertCase4(node)
	}
}

func (t *energyTree) insertCase4(node *energyNode) {
	grandparentNode := node.grandparent()
	if node == node.parent.right && node.parent == grandparentNode.left {
		t.rotateLeft(node.parent)
		node = node.left
	} else if node == node.parent.left && node.parent == grandparentNode.right {
		t.rotateRight(node.parent)
		node = node.right
	}
	t.insertCase5(node)
}

func (t *energyTree) insertCase5(node *energyNode) {
	node.parent.color = black
	grandparentNode := node.grandparent()
	grandparentNode.color = red
	if node == node.parent.left && node.parent == grandparentNode.left {
		t.rotateRight(grandparentNode)
	} else if node == node.parent.right && node.parent == grandparentNode.right {
		t.rotateLeft(grandparentNode)
	}
}
