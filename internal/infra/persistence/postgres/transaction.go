package postgres

import (
	"context"
	"fmt"

	"praxis/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and hands out repositories
// bound to that single transaction, so the client cascade reads and writes
// one consistent snapshot.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) PrincipalRepo() repository.PrincipalRepository {
	return NewPrincipalRepository(f.tx)
}

func (f *gormRepositoryFactory) ClientRepo() repository.ClientRepository {
	return NewClientRepository(f.tx)
}

func (f *gormRepositoryFactory) CaseRepo() repository.CaseRepository {
	return NewCaseRepository(f.tx)
}

func (f *gormRepositoryFactory) ContractRepo() repository.ContractRepository {
	return NewContractRepository(f.tx)
}

func (f *gormRepositoryFactory) DocumentRepo() repository.DocumentRepository {
	return NewDocumentRepository(f.tx)
}

func (f *gormRepositoryFactory) FinancialRepo() repository.FinancialRepository {
	return NewFinancialRepository(f.tx)
}

func (f *gormRepositoryFactory) ScheduleRepo() repository.ScheduleRepository {
	return NewScheduleRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If the callback panics the transaction must not stay open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
