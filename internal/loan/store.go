package loan

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found, please register first")
	ErrEmailTaken       = errors.New("a customer with this email is already registered")
	ErrLoanNotFound     = errors.New("loan not found")
)

// Store performs all loan operations against the database.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AddCustomer registers a new customer. Emails are unique.
func (s *Store) AddCustomer(name, email, phone string) (*Customer, error) {
	var count int64
	if err := s.db.Model(&Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check customer email: %v", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	customer := Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to add customer: %v", err)
	}
	return &customer, nil
}

// CustomerByEmail looks up a customer by their unique email.
func (s *Store) CustomerByEmail(email string) (*Customer, error) {
	var customer Customer
	err := s.db.Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer: %v", err)
	}
	return &customer, nil
}

// ApplyLoan files a new loan application for the customer with the given
// email. The loan starts Pending with balance equal to the amount.
func (s *Store) ApplyLoan(email string, amount, rate float64, termMonths int) (*Loan, error) {
	customer, err := s.CustomerByEmail(email)
	if err != nil {
		return nil, err
	}

	loan := Loan{
		CustomerID:   customer.ID,
		Amount:       amount,
		InterestRate: rate,
		TermMonths:   termMonths,
		Status:       StatusPending,
		Balance:      amount,
	}
	if err := s.db.Create(&loan).Error; err != nil {
		return nil, fmt.Errorf("failed to submit loan application: %v", err)
	}
	return &loan, nil
}

// SetStatus overwrites a loan's status. There is no state machine: a
// Rejected loan can be re-Approved and vice versa.
func (s *Store) SetStatus(loanID uint, status LoanStatus) error {
	result := s.db.Model(&Loan{}).Where("id = ?", loanID).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update loan status: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLoanNotFound
	}
	return nil
}

// Loans returns every loan with its customer preloaded, ordered by id.
func (s *Store) Loans() ([]Loan, error) {
	var loans []Loan
	if err := s.db.Preload("Customer").Order("id").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("failed to list loans: %v", err)
	}
	return loans, nil
}

// Loan returns the loan with the given id.
func (s *Store) Loan(loanID uint) (*Loan, error) {
	var loan Loan
	err := s.db.First(&loan, loanID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up loan: %v", err)
	}
	return &loan, nil
}

// Repay applies a payment to a loan and returns the new balance. The
// balance is floored at zero; status is left untouched.
func (s *Store) Repay(loanID uint, payment float64) (float64, error) {
	loan, err := s.Loan(loanID)
	if err != nil {
		return 0, err
	}

	newBalance := loan.Balance - payment
	if newBalance < 0 {
		newBalance = 0
	}

	if err := s.db.Model(loan).Update("balance", newBalance).Error; err != nil {
		return 0, fmt.Errorf("failed to record payment: %v", err)
	}
	return newBalance, nil
}
