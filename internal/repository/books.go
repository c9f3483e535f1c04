package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/isbn-books-api/internal/apperr"
	"github.com/snnyvrz/isbn-books-api/internal/model"
	"github.com/snnyvrz/isbn-books-api/internal/sqlerr"
	"gorm.io/gorm"
)

type BookRepository interface {
	FindAll(ctx context.Context, filter BookFilter) ([]model.Book, error)
	FindOne(ctx context.Context, isbn string) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, isbn string, changes BookChanges) (*model.Book, error)
	Remove(ctx context.Context, isbn string) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func bookNotFound(isbn string) error {
	return apperr.NotFound(fmt.Sprintf("There is no book with an isbn '%s'", isbn))
}

func (r *GormBookRepository) FindAll(ctx context.Context, filter BookFilter) ([]model.Book, error) {
	var books []model.Book
	if err := filter.apply(r.db.WithContext(ctx)).
		Order("title ASC").
		Order("isbn ASC").
		Find(&books).Error; err != nil {

		return nil, fmt.Errorf("find books: %w", err)
	}
	return books, nil
}

func (r *GormBookRepository) FindOne(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		First(&book, "isbn = ?", isbn).Error; err != nil {

		if sqlerr.IsNotFound(err) {
			return nil, bookNotFound(isbn)
		}
		return nil, fmt.Errorf("find book %s: %w", isbn, err)
	}
	return &book, nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book %s: %w", book.ISBN, err)
	}
	return nil
}

// Update applies only the provided fields. The existence check, write and
// re-read share one transaction.
func (r *GormBookRepository) Update(ctx context.Context, isbn string, changes BookChanges) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "isbn = ?", isbn).Error; err != nil {
			return err
		}

		if cols := changes.columns(); len(cols) > 0 {
			if err := tx.Model(&book).Updates(cols).Error; err != nil {
				return err
			}
		}

		return tx.First(&book, "isbn = ?", isbn).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookNotFound(isbn)
		}
		return nil, fmt.Errorf("update book %s: %w", isbn, err)
	}

	return &book, nil
}

func (r *GormBookRepository) Remove(ctx context.Context, isbn string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "isbn = ?", isbn)
	if result.Error != nil {
		return fmt.Errorf("delete book %s: %w", isbn, result.Error)
	}
	if result.RowsAffected == 0 {
		return bookNotFound(isbn)
	}
	return nil
}
