package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnSnakeToCamel_ShouldUppercaseLetterAfterUnderscore(t *testing.T) {
	assert.Equal(t, "categoryId", SnakeToCamel("category_id"))
	assert.Equal(t, "createdAt", SnakeToCamel("created_at"))
	assert.Equal(t, "amount", SnakeToCamel("amount"))
	assert.Equal(t, "pUserId", SnakeToCamel("p_user_id"))
}

func Test_OnCamelToSnake_ShouldInsertUnderscoreBeforeUppercase(t *testing.T) {
	assert.Equal(t, "category_id", CamelToSnake("categoryId"))
	assert.Equal(t, "chart_color", CamelToSnake("chartColor"))
	assert.Equal(t, "note", CamelToSnake("note"))
}

func Test_OnUnderscoredKeys_ShouldRoundTrip(t *testing.T) {
	assert.Equal(t, "Id", SnakeToCamel("_id"))
	assert.Equal(t, "_id", CamelToSnake(SnakeToCamel("_id")))
	assert.Equal(t, "a_B", SnakeToCamel("a__b"))
	assert.Equal(t, "a__b", CamelToSnake(SnakeToCamel("a__b")))
	assert.Equal(t, "item_2", SnakeToCamel("item_2"))
}

func Test_OnUppercaseAfterUnderscore_ShouldNotRoundTrip(t *testing.T) {
	assert.Equal(t, "a_B", SnakeToCamel("a_B"))
	assert.Equal(t, "a__b", CamelToSnake(SnakeToCamel("a_B")))
	assert.NotEqual(t, "a_B", CamelToSnake(SnakeToCamel("a_B")))
}

func Test_OnRoundTrip_ShouldRestoreSnakeCaseRows(t *testing.T) {
	in := Row{
		"id":          "e1",
		"category_id": "c1",
		"user_id":     "u1",
		"created_at":  "2025-10-13T10:00:00Z",
		"amount":      "12.50",
		"tags":        []any{Row{"sort_order": 1}, "plain"},
		"nested":      map[string]any{"chart_color": "#fff"},
	}

	out := RowToSnake(RowToCamel(in))

	assert.Equal(t, in["category_id"], out["category_id"])
	assert.Equal(t, in["created_at"], out["created_at"])
	assert.Equal(t, []any{Row{"sort_order": 1}, "plain"}, out["tags"])
	assert.Equal(t, map[string]any{"chart_color": "#fff"}, out["nested"])
	assert.Len(t, out, len(in))
}

func Test_OnToCamel_ShouldKeepArrayOrderAndScalars(t *testing.T) {
	in := []Row{{"month_label": "Jan", "amount": 1.5}, {"month_label": "Feb", "amount": 2.0}}

	out := ToCamel(in).([]Row)

	assert.Equal(t, []Row{{"monthLabel": "Jan", "amount": 1.5}, {"monthLabel": "Feb", "amount": 2.0}}, out)
	assert.Equal(t, 42, ToCamel(42))
	assert.Nil(t, RowsToSnake(nil))
}

func Test_OnRowAccessors_ShouldConvertLooseTypes(t *testing.T) {
	r := Row{"level": 2.0, "count": "3", "is_default": true, "amount": []byte("9.99")}

	assert.Equal(t, 2, r.Int("level"))
	assert.Equal(t, 3, r.Int("count"))
	assert.True(t, r.Bool("is_default"))
	assert.Equal(t, "9.99", r.Str("amount"))
	assert.Equal(t, "", r.Str("missing"))
	assert.False(t, r.Has("missing"))
}
