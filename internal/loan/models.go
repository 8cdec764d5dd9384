package loan

// LoanStatus represents where a loan application stands.
type LoanStatus string

const (
	StatusPending  LoanStatus = "Pending"
	StatusApproved LoanStatus = "Approved"
	StatusRejected LoanStatus = "Rejected"
)

// Customer represents a registered bank customer.
type Customer struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"not null"`
	Email string `gorm:"uniqueIndex;not null"`
	Phone string

	Loans []Loan `gorm:"foreignKey:CustomerID"`
}

// Loan represents a loan application and its outstanding balance.
type Loan struct {
	ID           uint `gorm:"primarykey"`
	CustomerID   uint `gorm:"not null;index"`
	Customer     *Customer
	Amount       float64
	InterestRate float64
	TermMonths   int        `gorm:"column:term"`
	Status       LoanStatus `gorm:"type:varchar(16);default:'Pending'"`
	Balance      float64
}

func (Loan) TableName() string {
	return "loans"
}
