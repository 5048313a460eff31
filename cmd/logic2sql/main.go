// Package main provides a CLI that converts JSON boolean filters into SQL
// WHERE conditions.
//
// The CLI supports:
//   - render: Convert a filter and print the SQL condition
//   - check: Convert a filter and validate the condition with the PostgreSQL parser
//   - config show: Print the effective configuration
//   - version: Print version information
//
// Usage:
//
//	logic2sql [flags] <command>
package main

func main() {
	Execute()
}
