// Package translate renames payload keys between the wire convention (snake_case)
// and the client convention (camelCase).
//
// The key rules are not inverses for snake keys holding an uppercase letter after
// an underscore: "a_B" stays "a_B" on the way in and comes back as "a__b". Such keys
// are not used by the tables and aggregates this client talks to.
package translate

import (
	"strings"
)

// Row is one record of a table or aggregate result.
type Row map[string]any

// SnakeToCamel uppercases the letter after each underscore and drops the underscore.
// Underscores not followed by a lowercase ASCII letter are kept.
func SnakeToCamel(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && isLower(key[i+1]) {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// CamelToSnake inserts an underscore before each uppercase ASCII letter and lowercases it.
func CamelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if isUpper(c) {
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// ToCamel rewrites every object key in v from snake_case to camelCase.
func ToCamel(v any) any {
	return walk(v, SnakeToCamel)
}

// ToSnake rewrites every object key in v from camelCase to snake_case.
func ToSnake(v any) any {
	return walk(v, CamelToSnake)
}

// RowToCamel is ToCamel for a single row.
func RowToCamel(r Row) Row {
	return renameRow(r, SnakeToCamel)
}

// RowToSnake is ToSnake for a single row.
func RowToSnake(r Row) Row {
	return renameRow(r, CamelToSnake)
}

// RowsToCamel is ToCamel for a result set.
func RowsToCamel(rows []Row) []Row {
	return renameRows(rows, SnakeToCamel)
}

// RowsToSnake is ToSnake for a result set.
func RowsToSnake(rows []Row) []Row {
	return renameRows(rows, CamelToSnake)
}

func walk(v any, rename func(string) string) any {
	switch t := v.(type) {
	case Row:
		return renameRow(t, rename)
	case map[string]any:
		return map[string]any(renameRow(t, rename))
	case []Row:
		return renameRows(t, rename)
	case []any:
		res := make([]any, len(t))
		for i, item := range t {
			res[i] = walk(item, rename)
		}
		return res
	default:
		return v
	}
}

func renameRow(r Row, rename func(string) string) Row {
	if r == nil {
		return nil
	}
	res := make(Row, len(r))
	for k, v := range r {
		res[rename(k)] = walk(v, rename)
	}
	return res
}

func renameRows(rows []Row, rename func(string) string) []Row {
	if rows == nil {
		return nil
	}
	res := make([]Row, len(rows))
	for i, r := range rows {
		res[i] = renameRow(r, rename)
	}
	return res
}
