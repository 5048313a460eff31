package filter

import "strings"

// Render renders expr as an SQL condition.
//
// Leaves are split on their first dot: "status.'open'" renders as
// `status = 'open'` and a path without a dot renders as `path = `.
// Operators are always wrapped in `( ... )`, negated ones are prefixed
// with ` NOT `. An operator without children renders as `(  )`.
// Nil children are skipped and a nil expression renders as "".
func Render(expr Expression) string {
	return renderer{}.render(expr)
}

type renderer struct {
	legacyLeafSplit bool
}

func (r renderer) render(expr Expression) string {
	if isNil(expr) {
		return ""
	}
	var sb strings.Builder
	r.write(&sb, expr)
	return sb.String()
}

func (r renderer) write(sb *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case Leaf:
		sb.WriteString(r.leaf(e.Path))
	case *Leaf:
		sb.WriteString(r.leaf(e.Path))
	case Operator:
		r.operator(sb, e)
	case *Operator:
		r.operator(sb, *e)
	}
}

func (r renderer) operator(sb *strings.Builder, op Operator) {
	if op.Negated {
		sb.WriteString(" NOT ")
	}
	sb.WriteString("( ")
	first := true
	for _, child := range op.Children {
		if isNil(child) {
			continue
		}
		if !first {
			sb.WriteString(op.Kind.separator())
		}
		first = false
		r.write(sb, child)
	}
	sb.WriteString(" )")
}

// isNil reports expressions that render as nothing: nil itself and nil
// *Leaf or *Operator pointers.
func isNil(expr Expression) bool {
	switch e := expr.(type) {
	case nil:
		return true
	case *Leaf:
		return e == nil
	case *Operator:
		return e == nil
	}
	return false
}

func (r renderer) leaf(path string) string {
	if r.legacyLeafSplit {
		return strings.Join(strings.Split(path, "."), " = ")
	}
	lhs, rhs, _ := strings.Cut(path, ".")
	return lhs + " = " + rhs
}
