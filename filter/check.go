package filter

import (
	"errors"
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Check verifies that condition parses as the WHERE clause of a single
// PostgreSQL SELECT statement. It only checks syntax, column names are not
// resolved.
func Check(condition string) error {
	result, err := pg_query.Parse("SELECT 1 WHERE " + condition)
	if err != nil {
		return InvalidSQLError{Condition: condition, Err: err}
	}

	stmts := result.GetStmts()
	if len(stmts) != 1 {
		return InvalidSQLError{Condition: condition, Err: fmt.Errorf("expected 1 statement, got %d", len(stmts))}
	}
	if stmts[0].GetStmt().GetSelectStmt().GetWhereClause() == nil {
		return InvalidSQLError{Condition: condition, Err: errors.New("expected a SELECT with a WHERE clause")}
	}
	return nil
}
