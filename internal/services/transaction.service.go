package services

import (
	"context"
	"practice/internal/database"
	"practice/internal/logger"

	"gorm.io/gorm"
)

type transactionKey struct{}

// GetTransaction returns the GORM transaction carried by ctx, if any.
// Repositories use it so multi-repository operations share one transaction.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(transactionKey{}).(*gorm.DB)
	return tx, ok
}

type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
func (s *TransactionService) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	log := s.log.Function("Execute")

	tx := s.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	txCtx := context.WithValue(ctx, transactionKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			log.Er("failed to roll back transaction", rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return log.Err("failed to commit transaction", err)
	}

	return nil
}
