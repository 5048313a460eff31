// This package converts nested JSON boolean filters into SQL WHERE conditions.
//
// A filter combines "field.value" comparisons with "and", "or" and "not":
//
//	{"and": ["status.'open'", {"or": ["owner.author", "owner.reviewer"]}], "not": true}
//
// becomes
//
//	NOT ( status = 'open' AND ( owner = author OR owner = reviewer ) )
//
// Field references and values are copied into the output as-is, including
// invalid UTF-8, so the output is not safe to use with untrusted input.
//
// Operators can be nested at most MaxOperatorDepth levels deep.
package filter
