package filter

import (
	"log/slog"
	"sort"
)

var discardLogger = slog.New(slog.DiscardHandler)

type Converter struct {
	legacyLeafSplit bool
	check           bool
	logger          *slog.Logger
}

// NewConverter creates a new Converter with the given options.
// The zero value is also ready to use.
func NewConverter(options ...Option) *Converter {
	converter := &Converter{logger: discardLogger}
	for _, option := range options {
		if option != nil {
			option(converter)
		}
	}
	return converter
}

// Convert converts a JSON filter into an SQL condition.
func (c *Converter) Convert(query []byte) (string, error) {
	value, err := Decode(query)
	if err != nil {
		c.log().Debug("decoding filter failed", slog.Any("error", err))
		return "", err
	}

	expr, err := Parse(value)
	if err != nil {
		c.log().Debug("parsing filter failed", slog.Any("error", err))
		return "", err
	}

	conditions := c.Render(expr)
	if c.check {
		if err := Check(conditions); err != nil {
			c.log().Debug("checking conditions failed", slog.String("conditions", conditions), slog.Any("error", err))
			return "", err
		}
	}

	c.log().Debug("converted filter", slog.Int("input_bytes", len(query)), slog.String("conditions", conditions))
	return conditions, nil
}

// Render renders expr using the options of c.
func (c *Converter) Render(expr Expression) string {
	return renderer{legacyLeafSplit: c.legacyLeafSplit}.render(expr)
}

func (c *Converter) log() *slog.Logger {
	if c.logger == nil {
		return discardLogger
	}
	return c.logger
}

// Parse builds an Expression from a decoded JSON value (see Decode).
// A string becomes a Leaf, an object with "and" or "or" becomes an Operator.
func Parse(value any) (Expression, error) {
	return parseExpression(value, "$")
}

func parseExpression(value any, path string) (Expression, error) {
	switch v := value.(type) {
	case string:
		return Leaf{Path: v}, nil
	case map[string]any:
		return parseOperator(v, path)
	default:
		return nil, UnexpectedShapeError{Path: path, Value: value}
	}
}

func parseOperator(object map[string]any, path string) (Expression, error) {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch key {
		case keyAnd, keyOr, keyNot:
		default:
			return nil, UnknownKeyError{Path: path, Key: key}
		}
	}

	andValue, hasAnd := object[keyAnd]
	orValue, hasOr := object[keyOr]

	var op Operator
	var key string
	var children any
	switch {
	case hasAnd && hasOr:
		return nil, ConflictingOperatorError{Path: path}
	case hasAnd:
		op.Kind, key, children = And, keyAnd, andValue
	case hasOr:
		op.Kind, key, children = Or, keyOr, orValue
	default:
		return nil, MissingOperatorError{Path: path}
	}

	if not, ok := object[keyNot]; ok {
		negated, ok := asBool(not)
		if !ok {
			return nil, TypeMismatchError{Path: keyPath(path, keyNot), Key: keyNot, Want: "a boolean", Value: not}
		}
		op.Negated = negated
	}

	items, ok := children.([]any)
	if !ok {
		return nil, TypeMismatchError{Path: keyPath(path, key), Key: key, Want: "an array", Value: children}
	}
	op.Children = make([]Expression, 0, len(items))
	for i, item := range items {
		child, err := parseExpression(item, indexPath(keyPath(path, key), i))
		if err != nil {
			return nil, err
		}
		op.Children = append(op.Children, child)
	}

	return op, nil
}
