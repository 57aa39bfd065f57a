// Package query builds the dynamic WHERE clauses used by every search.
//
// A nil *Clause means "no constraint": combinators skip it, and Where applies
// nothing for it. That lets each search list every optional field and only
// the populated ones end up in SQL.
package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Scope is a gorm scope, composable with db.Scopes.
type Scope = func(db *gorm.DB) *gorm.DB

// Clause is one SQL boolean expression with its bind arguments.
type Clause struct {
	Expr string
	Args []any
}

// WhereIf constrains the query with expr only when cond holds.
func WhereIf(cond bool, expr string, args ...any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if !cond {
			return db
		}
		return db.Where(expr, args...)
	}
}

// Where constrains the query with c, or leaves it untouched when c is nil.
func Where(c *Clause) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if c == nil {
			return db
		}
		return db.Where("("+c.Expr+")", c.Args...)
	}
}

// Contains is a case-insensitive substring test on column. A blank term
// yields nil; any other term is matched as given, surrounding spaces included.
func Contains(column, term string) *Clause {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	return &Clause{
		Expr: fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column),
		Args: []any{"%" + escapeLike(strings.ToLower(term)) + "%"},
	}
}

// Equal compares column with value when active is true.
func Equal(column string, value any, active bool) *Clause {
	if !active {
		return nil
	}
	return &Clause{Expr: column + " = ?", Args: []any{value}}
}

// Cond wraps a raw expression, nil when active is false.
func Cond(active bool, expr string, args ...any) *Clause {
	if !active {
		return nil
	}
	return &Clause{Expr: expr, Args: args}
}

// Or folds the non-nil clauses with OR. Nil when none is active.
func Or(clauses ...*Clause) *Clause {
	return join(" OR ", clauses)
}

// And folds the non-nil clauses with AND. Nil when none is active.
func And(clauses ...*Clause) *Clause {
	return join(" AND ", clauses)
}

// Within embeds c into a larger expression; format must contain one %s.
// Used to push a clause into a sub-select over a related table.
func (c *Clause) Within(format string) *Clause {
	if c == nil {
		return nil
	}
	return &Clause{Expr: fmt.Sprintf(format, c.Expr), Args: c.Args}
}

func join(sep string, clauses []*Clause) *Clause {
	var active []*Clause
	for _, c := range clauses {
		if c != nil {
			active = append(active, c)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}

	parts := make([]string, 0, len(active))
	var args []any
	for _, c := range active {
		parts = append(parts, "("+c.Expr+")")
		args = append(args, c.Args...)
	}
	return &Clause{Expr: strings.Join(parts, sep), Args: args}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
