// Package sqlerr recognises driver-specific failure signals behind gorm errors.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const UniqueViolation = "23505"

// IsUniqueViolation reports whether err carries a uniqueness-constraint signal.
//
// Connections opened with gorm's TranslateError (db.Open, testutil.NewTestDB)
// surface duplicates as gorm.ErrDuplicatedKey for both drivers. The raw
// *pgconn.PgError and sqlite3.Error checks apply to a *gorm.DB opened without
// translation and to errors that bypass gorm.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Code returns the SQLSTATE of a postgres error, or "" for anything else.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
