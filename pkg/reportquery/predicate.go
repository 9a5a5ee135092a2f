package reportquery

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Condition is the compiled leaf of a single filter.
type Condition struct {
	Operator string
	Value    any
	Low      any // between only
	High     any // between only
	Values   []any
}

// Node is one link in a predicate chain. A node either carries a child
// (relation segment) or a condition (leaf). Nodes are never mutated after
// construction; wrapping builds new nodes.
type Node struct {
	Segment string
	Child   *Node
	Cond    *Condition
}

// Tree is the compiled predicate set. Chains combine with AND semantics.
type Tree struct {
	roots []Node
}

// leafNode builds the terminal node for a field's last path segment.
func leafNode(segment string, cond Condition) Node {
	return Node{Segment: segment, Cond: &cond}
}

// wrapNode nests a node one relation level deeper.
func wrapNode(segment string, child Node) Node {
	c := child
	return Node{Segment: segment, Child: &c}
}

// chainFor builds the full nested chain for a dot path, leaf first.
func chainFor(path string, cond Condition) Node {
	segments := strings.Split(path, ".")
	node := leafNode(segments[len(segments)-1], cond)
	for i := len(segments) - 2; i >= 0; i-- {
		node = wrapNode(segments[i], node)
	}
	return node
}

// With returns a new tree extended by one chain; the receiver is unchanged.
func (t Tree) With(node Node) Tree {
	roots := make([]Node, 0, len(t.roots)+1)
	roots = append(roots, t.roots...)
	roots = append(roots, node)
	return Tree{roots: roots}
}

// Len reports the number of predicate chains.
func (t Tree) Len() int { return len(t.roots) }

// HasField reports whether any chain constrains the given dot path.
func (t Tree) HasField(path string) bool {
	for _, root := range t.roots {
		if t.pathOf(root) == path {
			return true
		}
	}
	return false
}

func (t Tree) pathOf(n Node) string {
	parts := []string{n.Segment}
	for cur := n.Child; cur != nil; cur = cur.Child {
		parts = append(parts, cur.Segment)
	}
	return strings.Join(parts, ".")
}

// ToBSON renders the tree as a dot-path-keyed bson.M ready for a Mongo
// adapter. Rendering an operator outside the fixed mapping is an
// ErrInvalidOperator, never a silent no-op.
func (t Tree) ToBSON() (bson.M, error) {
	out := bson.M{}
	for _, root := range t.roots {
		node := root
		for node.Child != nil {
			node = *node.Child
		}
		cond, err := renderCondition(*node.Cond)
		if err != nil {
			return nil, err
		}
		path := t.pathOf(root)
		if existing, ok := out[path]; ok {
			// Two filters on the same path AND together via $and.
			and, _ := out["$and"].([]bson.M)
			out["$and"] = append(and, bson.M{path: existing}, bson.M{path: cond})
			delete(out, path)
			continue
		}
		out[path] = cond
	}
	return out, nil
}

func renderCondition(c Condition) (any, error) {
	switch c.Operator {
	case OpEquals:
		return c.Value, nil
	case OpContains:
		return caseInsensitive(c.Value, "", "")
	case OpStartsWith:
		return caseInsensitive(c.Value, "^", "")
	case OpEndsWith:
		return caseInsensitive(c.Value, "", "$")
	case OpGt:
		return bson.M{"$gt": c.Value}, nil
	case OpGte:
		return bson.M{"$gte": c.Value}, nil
	case OpLt:
		return bson.M{"$lt": c.Value}, nil
	case OpLte:
		return bson.M{"$lte": c.Value}, nil
	case OpBetween:
		return bson.M{"$gte": c.Low, "$lte": c.High}, nil
	case OpIn:
		return bson.M{"$in": c.Values}, nil
	case OpNotIn:
		return bson.M{"$nin": c.Values}, nil
	case OpIsEmpty:
		return nil, nil
	case OpIsNotEmpty:
		return bson.M{"$ne": nil}, nil
	default:
		return nil, invalidOperator("", c.Operator)
	}
}

func caseInsensitive(v any, prefix, suffix string) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, malformedValue("", "text match", "requires a string value")
	}
	return primitive.Regex{Pattern: prefix + regexp.QuoteMeta(s) + suffix, Options: "i"}, nil
}
