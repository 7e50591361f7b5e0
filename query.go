package queries

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

var (
	_ Query     = &query{}
	_ QueryNode = &compositeNode{}
	_ QueryNode = QueryFunc(nil)
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

// QueryFunc adapts a plain function to a QueryNode.
type QueryFunc func(archetype Archetype, storage Storage) bool

func (f QueryFunc) Evaluate(archetype Archetype, storage Storage) bool {
	return f(archetype, storage)
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component, children ...QueryNode) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   children,
		components: components,
	}
}

// maskFor registers components with the storage schema so unseen types get their own bit.
func maskFor(components []Component, storage Storage) mask.Mask {
	storage.register(components...)
	var nodeMask mask.Mask
	for _, comp := range components {
		nodeMask.Mark(storage.RowIndexFor(comp))
	}
	return nodeMask
}

func (n *compositeNode) Evaluate(archetype Archetype, storage Storage) bool {
	// Build mask at evaluation time
	nodeMask := maskFor(n.components, storage)
	archeMask := archetype.Table().(mask.Maskable).Mask()

	switch n.op {
	case OpAnd:
		if !archeMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(archetype, storage) {
				return false
			}
		}
		return true

	case OpOr:
		if len(n.components) > 0 && archeMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(archetype, storage) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(archetype, storage) {
				return false
			}
		}
		return len(n.components) == 0 || archeMask.ContainsNone(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items)
}

// node builds a composite; the most recently built top-level node becomes the root.
func (q *query) node(op Operation, items []interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components, children...)
	q.root = node
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case []ComponentType:
			for _, c := range v {
				components = append(components, c)
			}
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(archetype Archetype, storage Storage) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(archetype, storage)
}
