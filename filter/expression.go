package filter

import "fmt"

// LogicKind is the operator that combines the children of an Operator.
type LogicKind int

const (
	And LogicKind = iota
	Or
)

func (k LogicKind) String() string {
	switch k {
	case And:
		return keyAnd
	case Or:
		return keyOr
	default:
		return fmt.Sprintf("LogicKind(%d)", int(k))
	}
}

func (k LogicKind) separator() string {
	if k == Or {
		return " OR "
	}
	return " AND "
}

// Expression is a parsed filter: either an Operator or a Leaf.
type Expression interface {
	expression()
}

// Operator combines its children with AND or OR, optionally negated.
// Children may be empty.
type Operator struct {
	Kind     LogicKind
	Children []Expression
	Negated  bool
}

// Leaf is a single comparison written as a dotted path, e.g. "some.value".
type Leaf struct {
	Path string
}

func (Operator) expression() {}
func (Leaf) expression()     {}
