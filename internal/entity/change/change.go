// Package change describes the events published after a successful mutation so
// other devices of the same user can refresh.
package change

import "time"

type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

type Event struct {
	UserID string
	Device string
	Op     Op
	IDs    []string
	At     time.Time
}
