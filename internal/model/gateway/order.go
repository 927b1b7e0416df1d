package gateway

import (
	"strings"

	"github.com/pkg/errors"
)

// Order is a parsed "column [asc|desc]" clause.
type Order struct {
	Column string
	Desc   bool
}

func ParseOrder(orderBy string) (Order, error) {
	fields := strings.Fields(strings.ToLower(orderBy))
	if len(fields) == 0 || len(fields) > 2 || !isIdentifier(fields[0]) {
		return Order{}, errors.Wrapf(ErrUnknownOrder, "order %q", orderBy)
	}
	res := Order{Column: fields[0]}
	if len(fields) == 2 {
		switch fields[1] {
		case "asc":
		case "desc":
			res.Desc = true
		default:
			return Order{}, errors.Wrapf(ErrUnknownOrder, "order %q", orderBy)
		}
	}
	return res, nil
}

func (o Order) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c == '_' || i > 0 && c >= '0' && c <= '9') {
			return false
		}
	}
	return s != ""
}
