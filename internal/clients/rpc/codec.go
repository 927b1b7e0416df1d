package rpc

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
	"max.ks1230/expense-tracker/internal/entity/session"
	"max.ks1230/expense-tracker/internal/model/translate"
)

// plain turns rows into the shapes structpb accepts.
func plain(v any) any {
	switch t := v.(type) {
	case translate.Row:
		return plain(map[string]any(t))
	case map[string]any:
		res := make(map[string]any, len(t))
		for k, val := range t {
			res[k] = plain(val)
		}
		return res
	case []translate.Row:
		res := make([]any, len(t))
		for i, r := range t {
			res[i] = plain(r)
		}
		return res
	case []any:
		res := make([]any, len(t))
		for i, val := range t {
			res[i] = plain(val)
		}
		return res
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(plain(fields).(map[string]any))
	if err != nil {
		return nil, errors.Wrap(err, "encode message")
	}
	return s, nil
}

func rowField(s *structpb.Struct, key string) translate.Row {
	v, ok := s.GetFields()[key]
	if !ok || v.GetStructValue() == nil {
		return translate.Row{}
	}
	return translate.Row(v.GetStructValue().AsMap())
}

func rowsField(s *structpb.Struct, key string) []translate.Row {
	list := s.GetFields()[key].GetListValue().GetValues()
	res := make([]translate.Row, 0, len(list))
	for _, v := range list {
		if st := v.GetStructValue(); st != nil {
			res = append(res, translate.Row(st.AsMap()))
		}
	}
	return res
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func sessionToStruct(sess *session.Session) (*structpb.Struct, error) {
	if sess == nil {
		return toStruct(map[string]any{})
	}
	fields := map[string]any{
		"access_token":  sess.AccessToken,
		"refresh_token": sess.RefreshToken,
		"expires_at":    sess.ExpiresAt,
	}
	if sess.User != nil {
		fields["user"] = userFields(sess.User)
	}
	return toStruct(fields)
}

func sessionFromStruct(s *structpb.Struct) (*session.Session, error) {
	row := translate.Row(s.AsMap())
	if row.Str("access_token") == "" {
		return nil, nil
	}
	sess := &session.Session{
		AccessToken:  row.Str("access_token"),
		RefreshToken: row.Str("refresh_token"),
		User:         userFromRow(rowField(s, "user")),
	}
	if raw := row.Str("expires_at"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, errors.Wrap(err, "decode session expiry")
		}
		sess.ExpiresAt = t
	}
	return sess, nil
}

func userFields(u *session.User) map[string]any {
	return map[string]any{"id": u.ID, "email": u.Email}
}

func userFromRow(r translate.Row) *session.User {
	if r.Str("id") == "" {
		return nil
	}
	return &session.User{ID: r.Str("id"), Email: r.Str("email")}
}
