package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/carein/call-summary/internal/domain/repositories"
)

type txKey struct{}

// gormTransactor implements the Transactor interface
type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a transactor backed by GORM
func NewTransactor(db *gorm.DB) repositories.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn in one transaction; an error or panic from fn rolls it back.
// Calls nested inside an open transaction reuse it.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or the base handle
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
