package postgres

import (
	"strconv"
	"strings"
)

// queryBuilder assembles a SQL statement while numbering placeholders from the
// arguments actually bound, so adding or dropping an optional clause can never
// shift another clause's parameter positions.
type queryBuilder struct {
	sql  strings.Builder
	args []any
}

// write appends raw SQL text.
func (b *queryBuilder) write(s string) {
	b.sql.WriteString(s)
}

// bind registers v as the next query parameter and returns its placeholder
// ("$1", "$2", ...).
func (b *queryBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) query() (string, []any) {
	return b.sql.String(), b.args
}
