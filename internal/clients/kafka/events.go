package kafka

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/change"
	"max.ks1230/expense-tracker/internal/model/translate"
)

// encodeEvent renders the event as JSON with snake_case keys.
func encodeEvent(e change.Event) ([]byte, error) {
	ids := make([]any, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id
	}
	row := translate.Row{
		"userId": e.UserID,
		"device": e.Device,
		"op":     string(e.Op),
		"ids":    ids,
		"at":     e.At.UTC().Format(time.RFC3339Nano),
	}
	raw, err := json.Marshal(translate.RowToSnake(row))
	if err != nil {
		return nil, errors.Wrap(err, "encode change event")
	}
	return raw, nil
}

func decodeEvent(raw []byte) (change.Event, error) {
	var row translate.Row
	if err := json.Unmarshal(raw, &row); err != nil {
		return change.Event{}, errors.Wrap(err, "decode change event")
	}
	row = translate.RowToCamel(row)
	e := change.Event{
		UserID: row.Str("userId"),
		Device: row.Str("device"),
		Op:     change.Op(row.Str("op")),
	}
	if list, ok := row["ids"].([]any); ok {
		for _, id := range list {
			if s, ok := id.(string); ok {
				e.IDs = append(e.IDs, s)
			}
		}
	}
	if at := row.Str("at"); at != "" {
		t, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return change.Event{}, errors.Wrap(err, "decode change event time")
		}
		e.At = t
	}
	if e.UserID == "" {
		return change.Event{}, errors.New("decode change event: user_id is missing")
	}
	return e, nil
}
