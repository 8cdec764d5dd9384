package loan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&Customer{}, &Loan{}))

	return NewStore(db)
}

func TestAddCustomer(t *testing.T) {
	store := newTestStore(t)

	customer, err := store.AddCustomer("Alice", "alice@example.com", "555-0100")
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)

	_, err = store.AddCustomer("Another Alice", "alice@example.com", "555-0199")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestApplyLoanRequiresCustomer(t *testing.T) {
	store := newTestStore(t)

	_, err := store.ApplyLoan("ghost@example.com", 1000, 5.5, 12)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestApplyLoanStartsPendingWithFullBalance(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddCustomer("Alice", "alice@example.com", "555-0100")
	require.NoError(t, err)

	loan, err := store.ApplyLoan("alice@example.com", 2500, 4.25, 24)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, loan.Status)
	assert.Equal(t, 2500.0, loan.Balance)
	assert.Equal(t, 24, loan.TermMonths)
}

// Status changes are plain overwrites: a Rejected loan can be Approved
// again and vice versa.
func TestSetStatusHasNoStateMachine(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddCustomer("Alice", "alice@example.com", "555-0100")
	require.NoError(t, err)
	applied, err := store.ApplyLoan("alice@example.com", 1000, 5, 12)
	require.NoError(t, err)

	require.NoError(t, store.SetStatus(applied.ID, StatusRejected))
	require.NoError(t, store.SetStatus(applied.ID, StatusApproved))

	loan, err := store.Loan(applied.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, loan.Status)
}

func TestSetStatusUnknownLoan(t *testing.T) {
	store := newTestStore(t)
	assert.ErrorIs(t, store.SetStatus(404, StatusApproved), ErrLoanNotFound)
}

func TestRepayFloorsBalanceAtZero(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddCustomer("Alice", "alice@example.com", "555-0100")
	require.NoError(t, err)
	applied, err := store.ApplyLoan("alice@example.com", 1000, 5, 12)
	require.NoError(t, err)

	balance, err := store.Repay(applied.ID, 400)
	require.NoError(t, err)
	assert.Equal(t, 600.0, balance)

	balance, err = store.Repay(applied.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance)

	loan, err := store.Loan(applied.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, loan.Balance)
	// repayment never touches status
	assert.Equal(t, StatusPending, loan.Status)
}

func TestRepayUnknownLoan(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Repay(404, 100)
	assert.ErrorIs(t, err, ErrLoanNotFound)
}

func TestLoansJoinCustomers(t *testing.T) {
	store := newTestStore(t)
	_, err := store.AddCustomer("Alice", "alice@example.com", "555-0100")
	require.NoError(t, err)
	_, err = store.AddCustomer("Bob", "bob@example.com", "555-0101")
	require.NoError(t, err)
	_, err = store.ApplyLoan("alice@example.com", 1000, 5, 12)
	require.NoError(t, err)
	_, err = store.ApplyLoan("bob@example.com", 500, 7, 6)
	require.NoError(t, err)

	loans, err := store.Loans()
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.NotNil(t, loans[0].Customer)
	assert.Equal(t, "Alice", loans[0].Customer.Name)
	assert.Equal(t, "Bob", loans[1].Customer.Name)
}
