package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "local_session"
	colKey       = "entry_key"
	colValue     = "entry_value"

	keyAuthToken = "authToken"
	keyUser      = "user"
)

// qb builds statements with sqlite "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertEntryQuery inserts key=value, replacing an existing value.
func buildUpsertEntryQuery(key, value string) (string, []any, error) {
	return qb.
		Insert(sessionTable).
		Columns(colKey, colValue).
		Values(key, value).
		Suffix("ON CONFLICT(" + colKey + ") DO UPDATE SET " + colValue + " = excluded." + colValue).
		ToSql()
}

// buildSelectEntriesQuery reads both session entries.
func buildSelectEntriesQuery() (string, []any, error) {
	return qb.
		Select(colKey, colValue).
		From(sessionTable).
		Where(sq.Eq{colKey: []string{keyAuthToken, keyUser}}).
		ToSql()
}

// buildDeleteEntriesQuery removes both session entries.
func buildDeleteEntriesQuery() (string, []any, error) {
	return qb.
		Delete(sessionTable).
		Where(sq.Eq{colKey: []string{keyAuthToken, keyUser}}).
		ToSql()
}
