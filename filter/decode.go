package filter

import "github.com/valyala/fastjson"

// MaxOperatorDepth is the deepest operator nesting Decode accepts. Every
// operator takes two JSON levels (its object and its array) and the leaf
// string inside the innermost one takes another.
const MaxOperatorDepth = (fastjson.MaxDepth - 1) / 2

var parserPool fastjson.ParserPool

// Decode parses JSON text into the generic values Parse works on: string,
// bool, float64, nil, []any and map[string]any.
func Decode(data []byte) (any, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		if depth := jsonDepth(data); depth > fastjson.MaxDepth {
			return nil, TooDeepError{Depth: depth, Limit: fastjson.MaxDepth}
		}
		return nil, SyntaxError{Err: err}
	}
	// The parsed value is only valid until p is reused.
	return toGeneric(v), nil
}

func toGeneric(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		m := make(map[string]any, o.Len())
		o.Visit(func(key []byte, v *fastjson.Value) {
			m[string(key)] = toGeneric(v)
		})
		return m
	case fastjson.TypeArray:
		values, _ := v.Array()
		a := make([]any, 0, len(values))
		for _, e := range values {
			a = append(a, toGeneric(e))
		}
		return a
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}

// jsonDepth returns the depth of the most deeply nested value in data,
// counted the way fastjson counts it: the top-level value is at depth 1 and
// every value inside a container is one deeper than the container.
func jsonDepth(data []byte) int {
	open, deepest := 0, 0
	value := func() {
		if open+1 > deepest {
			deepest = open + 1
		}
	}
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\r', '\n', ',', ':':
		case '{', '[':
			value()
			open++
		case '}', ']':
			if open > 0 {
				open--
			}
		case '"':
			value()
			for i++; i < len(data) && data[i] != '"'; i++ {
				if data[i] == '\\' {
					i++
				}
			}
		default:
			value()
		}
	}
	return deepest
}
