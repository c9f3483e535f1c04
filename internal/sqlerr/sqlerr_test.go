package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/snnyvrz/isbn-books-api/internal/model"
	"github.com/snnyvrz/isbn-books-api/internal/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, true},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)) {
		t.Errorf("expected wrapped ErrRecordNotFound to be detected")
	}
	if IsNotFound(errors.New("other")) {
		t.Errorf("expected unrelated error not to be detected")
	}
}

func TestCode(t *testing.T) {
	if got := Code(fmt.Errorf("x: %w", &pgconn.PgError{Code: "23505"})); got != "23505" {
		t.Errorf("expected 23505, got %q", got)
	}
	if got := Code(errors.New("x")); got != "" {
		t.Errorf("expected empty code, got %q", got)
	}
}

func insertTwice(t *testing.T, db *gorm.DB) error {
	t.Helper()

	book := testutil.NewBook("0691161518")
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	again := testutil.NewBook("0691161518")
	return db.Create(&again).Error
}

func TestIsUniqueViolation_TranslatedSQLite(t *testing.T) {
	err := insertTwice(t, testutil.NewTestDB(t))

	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey from a translating connection, got %v", err)
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected duplicate to be detected")
	}
}

func TestIsUniqueViolation_UntranslatedSQLite(t *testing.T) {
	dsn := "file:sqlerr_" + uuid.New().String() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Book{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	err = insertTwice(t, db)

	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		t.Fatalf("expected raw sqlite3.Error without translation, got %T (%v)", err, err)
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected duplicate to be detected")
	}
}
