package errors

// Postgres glue: SQLSTATE classification for repo errors and field
// inference from constraint metadata (e.g. a duplicate banned word
// surfacing as field "word")

import (
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
	sqlstateStringTruncation    = "22001"
	sqlstateInvalidText         = "22P02"

	sqlstateSerializationFail = "40001"
	sqlstateDeadlock          = "40P01"
	sqlstateLockNotAvailable  = "55P03"
	sqlstateReadOnlyTx        = "25006"
	sqlstateCannotConnectNow  = "57P03"
)

// ExtractPgError digs through the wrap chain for a *pgconn.PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err carries the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique constraint violation. Repos use this
// as a backstop where two writers race past an application-level check
func IsDuplicateKey(err error) bool { return IsSQLState(err, sqlstateUniqueViolation) }

// IsForeignKeyViolation reports a foreign key constraint violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, sqlstateForeignKeyViolation) }

// DBErrorCode classifies a Postgres error into an ErrorCode.
// ok=false means err was not a PgError at all
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}

	switch pgErr.Code {
	case sqlstateUniqueViolation:
		return ErrorCodeDuplicateKey, true

	case sqlstateForeignKeyViolation:
		// caller referenced a row that isn't there: bad input, not a server fault
		return ErrorCodeInvalidArgument, true

	case sqlstateNotNullViolation, sqlstateCheckViolation:
		return ErrorCodeValidation, true

	case sqlstateStringTruncation, sqlstateInvalidText:
		return ErrorCodeInvalidArgument, true

	case sqlstateSerializationFail, sqlstateDeadlock, sqlstateLockNotAvailable:
		return ErrorCodeDB, true

	case sqlstateReadOnlyTx, sqlstateCannotConnectNow:
		return ErrorCodeUnavailable, true
	}

	return ErrorCodeDB, true
}

// FromPostgres wraps a repo error with its classified ErrorCode.
// nil passes through
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// AttachFieldFromPg infers a field name from PgError metadata: the
// column name when Postgres reports one, else the trailing token of the
// constraint name (banned_words_word -> word). Returns err unchanged
// when nothing usable is present
func AttachFieldFromPg(err error) error {
	var pgErr *pgconn.PgError
	if !stderrs.As(Root(err), &pgErr) {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	if c := strings.TrimSpace(pgErr.ConstraintName); c != "" {
		tok := c
		if i := strings.LastIndex(c, "_"); i >= 0 && i+1 < len(c) {
			tok = c[i+1:]
		}
		// default pg constraint names end in "key" / "fkey"; those aren't fields
		if tok != "" && tok != "key" && tok != "fkey" {
			return WithField(err, tok)
		}
	}
	return err
}

// FromPostgresWithField is FromPostgres plus field inference
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}
