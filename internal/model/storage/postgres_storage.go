package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/gateway"
	"max.ks1230/expense-tracker/internal/model/translate"

	// postgres driver
	_ "github.com/lib/pq"
)

const dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// writable columns per table; id is always assigned by the database
var tableColumns = map[string]map[string]bool{
	gateway.TableExpenses: columnSet(
		"user_id", "amount", "category_id", "note", "date", "created_at", "updated_at",
	),
	gateway.TableCategories: columnSet(
		"user_id", "parent_id", "name", "display_name", "color", "chart_color", "icon",
		"is_default", "sort_order", "level", "created_at", "updated_at",
	),
}

type config interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

type PostgresStorage struct {
	db *sql.DB
}

func Connect(config config) (*sql.DB, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return db, nil
}

func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Insert(ctx context.Context, table string, row translate.Row) (translate.Row, error) {
	query, err := insertQuery(table, row)
	if err != nil {
		return nil, err
	}
	return s.queryOne(ctx, query, "insert")
}

func (s *PostgresStorage) Update(ctx context.Context, table, id, userID string, patch translate.Row) (translate.Row, error) {
	query, err := updateQuery(table, id, userID, patch)
	if err != nil {
		return nil, err
	}
	row, err := s.queryOne(ctx, query, "update")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(gateway.ErrNotFound, "update %s %s", table, id)
	}
	return row, err
}

func (s *PostgresStorage) Delete(ctx context.Context, table, id, userID string) error {
	query, err := deleteQuery(table, id, userID)
	if err != nil {
		return err
	}
	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete")
	}
	if affected == 0 {
		return errors.Wrapf(gateway.ErrNotFound, "delete %s %s", table, id)
	}
	return nil
}

func (s *PostgresStorage) SelectAll(ctx context.Context, table, userID, orderBy string) ([]translate.Row, error) {
	query, err := selectAllQuery(table, userID, orderBy)
	if err != nil {
		return nil, err
	}
	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "select all")
	}
	return scanRows(rows)
}

func (s *PostgresStorage) CallAggregate(ctx context.Context, name string, params translate.Row) ([]translate.Row, error) {
	query, args, err := aggregateQuery(name, params)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "call %s", name)
	}
	return scanRows(rows)
}

func (s *PostgresStorage) queryOne(ctx context.Context, query sq.Sqlizer, op string) (translate.Row, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	res, err := scanRows(rows)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if len(res) == 0 {
		return nil, sql.ErrNoRows
	}
	return res[0], nil
}

func insertQuery(table string, row translate.Row) (sq.InsertBuilder, error) {
	values, err := writableValues(table, row)
	if err != nil {
		return sq.InsertBuilder{}, err
	}
	if len(values) == 0 {
		return sq.InsertBuilder{}, errors.New("insert: empty row")
	}
	return psql.Insert(table).SetMap(values).Suffix("RETURNING *"), nil
}

func updateQuery(table, id, userID string, patch translate.Row) (sq.UpdateBuilder, error) {
	values, err := writableValues(table, patch)
	if err != nil {
		return sq.UpdateBuilder{}, err
	}
	for _, col := range protectedColumns {
		delete(values, col)
	}
	if len(values) == 0 {
		return sq.UpdateBuilder{}, errors.New("update: empty patch")
	}
	return psql.Update(table).
		SetMap(values).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING *"), nil
}

func deleteQuery(table, id, userID string) (sq.DeleteBuilder, error) {
	if _, ok := tableColumns[table]; !ok {
		return sq.DeleteBuilder{}, errors.Wrapf(gateway.ErrUnknownTable, "table %s", table)
	}
	return psql.Delete(table).Where(sq.Eq{"id": id, "user_id": userID}), nil
}

func selectAllQuery(table, userID, orderBy string) (sq.SelectBuilder, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return sq.SelectBuilder{}, errors.Wrapf(gateway.ErrUnknownTable, "table %s", table)
	}
	order, err := gateway.ParseOrder(orderBy)
	if err != nil {
		return sq.SelectBuilder{}, err
	}
	if !cols[order.Column] && order.Column != "id" {
		return sq.SelectBuilder{}, errors.Wrapf(gateway.ErrUnknownOrder, "column %s", order.Column)
	}
	return psql.Select("*").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(order.String()), nil
}

func aggregateQuery(name string, params translate.Row) (string, []any, error) {
	names, ok := gateway.AggregateParams[name]
	if !ok {
		return "", nil, errors.Wrapf(gateway.ErrUnknownAggregate, "aggregate %s", name)
	}
	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, p := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = params[p]
	}
	return fmt.Sprintf("SELECT * FROM %s(%s)", name, strings.Join(placeholders, ", ")), args, nil
}

func writableValues(table string, row translate.Row) (map[string]any, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return nil, errors.Wrapf(gateway.ErrUnknownTable, "table %s", table)
	}
	values := make(map[string]any, len(row))
	for k, v := range row {
		if !cols[k] {
			logger.Debug("skip unknown column", zap.String("table", table), zap.String("column", k))
			continue
		}
		values[k] = v
	}
	return values, nil
}

func scanRows(rows *sql.Rows) ([]translate.Row, error) {
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, "read columns")
	}
	res := make([]translate.Row, 0)
	for rows.Next() {
		values := make([]any, len(types))
		ptrs := make([]any, len(types))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scan row")
		}
		row := make(translate.Row, len(types))
		for i, t := range types {
			row[t.Name()] = normalizeValue(values[i], t.DatabaseTypeName())
		}
		res = append(res, row)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}
	return res, nil
}

// normalizeValue turns driver values into the wire scalars: strings, numbers, bools.
func normalizeValue(v any, dbType string) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		if dbType == "DATE" {
			return t.Format(expense.DateLayout)
		}
		return expense.FormatTimestamp(t)
	default:
		return v
	}
}

func columnSet(cols ...string) map[string]bool {
	res := make(map[string]bool, len(cols))
	for _, c := range cols {
		res[c] = true
	}
	return res
}
