package translate

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

func (r Row) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Str returns the value under key formatted as a string, "" when absent.
func (r Row) Str(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value under key as an int. Numbers decoded from JSON or protobuf
// arrive as float64 and are truncated.
func (r Row) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(math.Trunc(v))
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	case []byte:
		n, _ := strconv.Atoi(string(v))
		return n
	default:
		return 0
	}
}

func (r Row) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Clone returns a shallow copy of r.
func (r Row) Clone() Row {
	res := make(Row, len(r))
	for k, v := range r {
		res[k] = v
	}
	return res
}
