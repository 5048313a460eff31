package integration

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/poki/logic-filter-to-sql/filter"
)

func queryIDs(t *testing.T, db *sql.DB, where string) []int {
	t.Helper()

	rows, err := db.Query(`
		SELECT id
		FROM players
		WHERE ` + where + `
		ORDER BY id;
	`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatal(err)
	}
	return ids
}

func TestIntegration_PQ(t *testing.T) {
	db := setupPQ(t)
	createPlayersTable(t, func(query string) error {
		_, err := db.Exec(query)
		return err
	})

	tests := []struct {
		name  string
		input string
		ids   []int
	}{
		{
			"or of and",
			`{"or": ["class.'mage'", {"and": ["class.'warrior'", "mount.'dragon'"]}]}`,
			[]int{2, 5, 7, 8},
		},
		{
			"column comparison",
			`{"and": ["guild_id.home_guild_id", {"or": ["class.'rogue'", "class.'warrior'"]}]}`,
			[]int{1, 3, 7, 9, 10},
		},
		{
			"nested negation",
			`{"and": ["class.'warrior'", {"or": ["mount.'horse'", "mount.'dragon'"], "not": true}]}`,
			[]int{10},
		},
		{
			"string negation",
			`{"or": ["level.10", "level.100"], "not": "true"}`,
			[]int{2, 3, 4, 5, 6, 7, 8, 9},
		},
	}

	c := filter.NewConverter(filter.WithCheck())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, err := c.Convert([]byte(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if ids := queryIDs(t, db, where); !reflect.DeepEqual(ids, tt.ids) {
				t.Fatalf("expected %v, got %v", tt.ids, ids)
			}
		})
	}
}

func TestIntegration_Not_PGX(t *testing.T) {
	db := setupPGX(t)

	ctx := context.Background()
	createPlayersTable(t, func(query string) error {
		_, err := db.Exec(ctx, query)
		return err
	})

	c := filter.NewConverter()
	in := `{
		"and": ["class.'warrior'"],
		"not": true
	}`
	where, err := c.Convert([]byte(in))
	if err != nil {
		t.Fatal(err)
	}

	rows, err := db.Query(ctx, `
		SELECT id
		FROM players
		WHERE `+where+`
		ORDER BY id;
	`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	if len(ids) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(ids))
	}
	if !reflect.DeepEqual(ids, []int{2, 3, 5, 6, 8, 9}) {
		t.Fatalf("expected [2, 3, 5, 6, 8, 9], got %v", ids)
	}
}

func TestIntegration_LegacyLeafSplit_PQ(t *testing.T) {
	db := setupPQ(t)
	createPlayersTable(t, func(query string) error {
		_, err := db.Exec(query)
		return err
	})

	// level = 60 = level is not valid SQL, the legacy split is only useful for
	// paths with a single dot.
	c := filter.NewConverter(filter.WithLegacyLeafSplit(), filter.WithCheck())
	if _, err := c.Convert([]byte(`{"and": ["level.60.level"]}`)); err == nil {
		t.Fatal("expected an invalid SQL error")
	}

	where, err := c.Convert([]byte(`{"and": ["level.60"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if ids := queryIDs(t, db, where); !reflect.DeepEqual(ids, []int{6}) {
		t.Fatalf("expected [6], got %v", ids)
	}
}
