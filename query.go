package tableau

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

// nodeMask builds the mask of the components the scene has registered.
// unregistered counts the components no entity of the scene can have.
func nodeMask(components []Component, scene *Scene) (m mask.Mask, unregistered int) {
	for _, comp := range components {
		id, ok := scene.registry.lookup(comp.componentType())
		if !ok {
			unregistered++
			continue
		}
		m.Mark(uint32(id))
	}
	return m, unregistered
}

func (n *compositeNode) Evaluate(presence mask.Mask, scene *Scene) bool {
	nm, unregistered := nodeMask(n.components, scene)

	switch n.op {
	case OpAnd:
		if unregistered > 0 || !presence.ContainsAll(nm) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(presence, scene) {
				return false
			}
		}
		return true

	case OpOr:
		if presence.ContainsAny(nm) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(presence, scene) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(presence, scene) {
				return false
			}
		}
		return presence.ContainsNone(nm)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpAnd, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Or(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpOr, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) Not(items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(OpNot, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

// processItems splits items into component handles and child nodes. A query
// passed as an item contributes its root.
func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case *query:
			if v.root != nil {
				children = append(children, v.root)
			}
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(presence mask.Mask, scene *Scene) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(presence, scene)
}
