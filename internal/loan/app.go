package loan

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"recordkeep/internal/menu"
)

// App wires the loan store to the interactive menu.
type App struct {
	store  *Store
	logger *zap.Logger
}

func NewApp(store *Store, logger *zap.Logger) *App {
	return &App{
		store:  store,
		logger: logger,
	}
}

// Menu returns the top-level loan menu.
func (a *App) Menu(p *menu.Prompter) *menu.Menu {
	return &menu.Menu{
		Title:        "====== BANK LOAN MANAGEMENT SYSTEM ======",
		ExitKey:      "7",
		Farewell:     "Exiting system. Goodbye!",
		ChoicePrompt: "Enter choice",
		Options: []menu.Option{
			{Key: "1", Label: "Add Customer", Run: func() error { return a.addCustomer(p) }},
			{Key: "2", Label: "Apply Loan", Run: func() error { return a.applyLoan(p) }},
			{Key: "3", Label: "Approve Loan", Run: func() error { return a.setStatus(p, StatusApproved) }},
			{Key: "4", Label: "Reject Loan", Run: func() error { return a.setStatus(p, StatusRejected) }},
			{Key: "5", Label: "View All Loans", Run: func() error { return a.viewLoans(p) }},
			{Key: "6", Label: "Repay Loan", Run: func() error { return a.repayLoan(p) }},
		},
	}
}

func (a *App) addCustomer(p *menu.Prompter) error {
	name, err := p.ReadString("Enter Customer Name")
	if err != nil {
		return err
	}
	email, err := p.ReadString("Enter Email")
	if err != nil {
		return err
	}
	phone, err := p.ReadString("Enter Phone")
	if err != nil {
		return err
	}

	customer, err := a.store.AddCustomer(name, email, phone)
	if err != nil {
		return err
	}

	a.logger.Info("customer added",
		zap.Uint("customer_id", customer.ID),
		zap.String("email", customer.Email))
	fmt.Fprintln(p.Out(), menu.OK("Customer added successfully!"))
	return nil
}

func (a *App) applyLoan(p *menu.Prompter) error {
	email, err := p.ReadString("Enter Customer Email")
	if err != nil {
		return err
	}
	amount, err := p.ReadFloat("Enter Loan Amount")
	if err != nil {
		return err
	}
	rate, err := p.ReadFloat("Enter Interest Rate (%)")
	if err != nil {
		return err
	}
	term, err := p.ReadInt("Enter Term (in months)")
	if err != nil {
		return err
	}

	loan, err := a.store.ApplyLoan(email, amount, rate, term)
	if err != nil {
		return err
	}

	a.logger.Info("loan application submitted",
		zap.Uint("loan_id", loan.ID),
		zap.Uint("customer_id", loan.CustomerID),
		zap.Float64("amount", loan.Amount))
	fmt.Fprintln(p.Out(), menu.OK("Loan application submitted!"))
	return nil
}

func (a *App) setStatus(p *menu.Prompter, status LoanStatus) error {
	verb := "Approve"
	if status == StatusRejected {
		verb = "Reject"
	}
	loanID, err := p.ReadInt(fmt.Sprintf("Enter Loan ID to %s", verb))
	if err != nil {
		return err
	}

	if err := a.store.SetStatus(uint(loanID), status); err != nil {
		return err
	}

	a.logger.Info("loan status updated",
		zap.Int("loan_id", loanID),
		zap.String("status", string(status)))
	if status == StatusApproved {
		fmt.Fprintln(p.Out(), menu.OK("Loan Approved!"))
	} else {
		fmt.Fprintln(p.Out(), menu.Warn("Loan Rejected!"))
	}
	return nil
}

func (a *App) viewLoans(p *menu.Prompter) error {
	loans, err := a.store.Loans()
	if err != nil {
		return err
	}

	out := p.Out()
	fmt.Fprintln(out, "\n--- Loan Details ---")
	if len(loans) == 0 {
		fmt.Fprintln(out, "No loans on record.")
		return nil
	}
	for _, l := range loans {
		name := ""
		if l.Customer != nil {
			name = l.Customer.Name
		}
		fmt.Fprintf(out, "Loan ID: %d | Name: %s | Amount: %s | Rate: %g%% | Term: %d months | Status: %s | Balance: %s\n",
			l.ID, name,
			humanize.CommafWithDigits(l.Amount, 2),
			l.InterestRate, l.TermMonths, l.Status,
			humanize.CommafWithDigits(l.Balance, 2))
	}
	return nil
}

func (a *App) repayLoan(p *menu.Prompter) error {
	loanID, err := p.ReadInt("Enter Loan ID")
	if err != nil {
		return err
	}
	payment, err := p.ReadFloat("Enter Repayment Amount")
	if err != nil {
		return err
	}

	balance, err := a.store.Repay(uint(loanID), payment)
	if err != nil {
		return err
	}

	a.logger.Info("loan repayment recorded",
		zap.Int("loan_id", loanID),
		zap.Float64("payment", payment),
		zap.Float64("balance", balance))
	fmt.Fprintln(p.Out(), menu.OK(fmt.Sprintf(
		"Payment successful! Remaining Balance: %s", humanize.CommafWithDigits(balance, 2))))
	return nil
}
