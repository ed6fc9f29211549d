package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so that multi-table work (the client cascade above all) is one
// atomic unit.
type RepositoryFactory interface {
	// PrincipalRepo returns a PrincipalRepository bound to the current transaction.
	PrincipalRepo() PrincipalRepository

	// ClientRepo returns a ClientRepository bound to the current transaction.
	ClientRepo() ClientRepository

	// CaseRepo returns a CaseRepository bound to the current transaction.
	CaseRepo() CaseRepository

	// ContractRepo returns a ContractRepository bound to the current transaction.
	ContractRepo() ContractRepository

	// DocumentRepo returns a DocumentRepository bound to the current transaction.
	DocumentRepo() DocumentRepository

	// FinancialRepo returns a FinancialRepository bound to the current transaction.
	FinancialRepo() FinancialRepository

	// ScheduleRepo returns a ScheduleRepository bound to the current transaction.
	ScheduleRepo() ScheduleRepository
}
