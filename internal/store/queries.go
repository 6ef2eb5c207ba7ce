package store

import (
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func sessionQuery() (string, []any, error) {
	return psql.
		Select("current_user", "current_database()", "current_setting('server_version')").
		ToSql()
}

func databaseExistsQuery(name string) (string, []any, error) {
	inner := psql.Select("1").From("pg_database").Where(sq.Eq{"datname": name})

	return psql.Select().Column(sq.Expr("EXISTS(?)", inner)).ToSql()
}
