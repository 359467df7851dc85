package repository

import (
	"strconv"
	"strings"
)

// whereClause accumulates AND-ed conditions with positional arguments.
type whereClause struct {
	conds []string
	args  []interface{}
}

// add appends a condition. Every "?" in cond is replaced with the next
// positional placeholder bound to arg.
func (w *whereClause) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

// next returns the placeholder for an argument appended after the conditions.
func (w *whereClause) next(arg interface{}) string {
	w.args = append(w.args, arg)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the
// value. Postgres treats backslash as the default LIKE escape.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
