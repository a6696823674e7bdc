// Package shell implements the interactive menu-driven banking session.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/ledger"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// Options configures a Session.
type Options struct {
	BankName       string
	AdminPassword  string
	MaxAttempts    int
	StatementCount int
	// Rates are shown when choosing an account type. Defaults to ledger.DefaultRates.
	Rates ledger.Rates
}

// Session drives a Ledger from line-oriented input.
type Session struct {
	ledger *ledger.Ledger
	opts   Options
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger

	// Login budgets are per account number and live only as long as the session.
	attempts map[string]*ledger.Attempts
}

// errQuit signals end of input.
var errQuit = errors.New("input closed")

// New creates a Session reading from in and writing prompts and results to out.
func New(l *ledger.Ledger, in io.Reader, out io.Writer, opts Options, logger *zap.Logger) *Session {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = ledger.DefaultMaxAttempts
	}
	if opts.StatementCount < 1 {
		opts.StatementCount = 5
	}
	if opts.Rates == nil {
		opts.Rates = ledger.DefaultRates()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		ledger:   l,
		opts:     opts,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger,
		attempts: make(map[string]*ledger.Attempts),
	}
}

// Run shows the main menu until the user exits or input ends.
func (s *Session) Run() error {
	for {
		s.printf("\n%s\n1. Create Account\n2. Login\n3. Admin Functions\n4. Exit\n", s.opts.BankName)
		choice, err := s.prompt("Enter choice: ")
		if err != nil {
			return s.quit(err)
		}

		switch choice {
		case "1":
			err = s.createAccount()
		case "2":
			err = s.login()
		case "3":
			err = s.admin()
		case "4":
			s.printf("Thank you for using our banking system!\n")
			return nil
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return s.quit(err)
		}
	}
}

func (s *Session) quit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (s *Session) createAccount() error {
	name, err := s.promptUntil("Enter account holder name: ", "Name cannot be empty.", func(v string) bool {
		return v != ""
	})
	if err != nil {
		return err
	}

	pin, err := s.promptPIN("Enter 4-digit PIN: ")
	if err != nil {
		return err
	}

	category, err := s.promptCategory()
	if err != nil {
		return err
	}

	var initial decimal.Decimal
	_, err = s.promptUntil("Enter initial deposit amount: $", "Enter zero or a positive amount with at most two decimal places.", func(v string) bool {
		d, perr := parseMoney(v)
		if perr != nil || d.IsNegative() {
			return false
		}
		initial = d
		return true
	})
	if err != nil {
		return err
	}

	acct, err := s.ledger.CreateAccount(name, pin, category, initial)
	if err != nil {
		s.printf("Could not create account: %v\n", err)
		return nil
	}
	s.printf("\nAccount created successfully!\nYour account number is: %s\n", acct.Number())
	return nil
}

func (s *Session) login() error {
	number, err := s.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	pin, err := s.prompt("Enter PIN: ")
	if err != nil {
		return err
	}

	budget, ok := s.attempts[number]
	if !ok {
		budget = ledger.NewAttempts(s.opts.MaxAttempts)
		s.attempts[number] = budget
	}

	acct, err := s.ledger.Authenticate(number, pin, budget)
	switch {
	case errors.Is(err, ledger.ErrLockedOut):
		s.printf("Too many failed attempts. Account temporarily locked.\n")
		return nil
	case err != nil:
		s.printf("Login failed. Invalid account number or PIN.\n")
		return nil
	}

	s.printf("\nLogin successful! Welcome, %s!\n", acct.HolderName())
	return s.customer(acct)
}

func (s *Session) customer(acct *ledger.Account) error {
	for {
		s.printf("\nCustomer Menu\n1. Deposit\n2. Withdraw\n3. Transfer\n4. View Statement\n5. Change PIN\n6. Logout\n")
		choice, err := s.prompt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.deposit(acct)
		case "2":
			err = s.withdraw(acct)
		case "3":
			err = s.transfer(acct)
		case "4":
			err = s.statement(acct)
		case "5":
			err = s.changePIN(acct)
		case "6":
			s.printf("Logged out.\n")
			return nil
		default:
			s.printf("Invalid choice. Try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) deposit(acct *ledger.Account) error {
	amount, err := s.promptAmount("Enter deposit amount: $")
	if err != nil {
		return err
	}
	if err := acct.Deposit(amount, ""); err != nil {
		s.printf("Deposit failed: %v\n", err)
		return nil
	}
	s.printf("Deposit successful. New balance: %s\n", FormatMoney(acct.Balance()))
	return nil
}

func (s *Session) withdraw(acct *ledger.Account) error {
	amount, err := s.promptAmount("Enter withdrawal amount: $")
	if err != nil {
		return err
	}
	ok, err := acct.Withdraw(amount, "")
	switch {
	case err != nil:
		s.printf("Withdrawal failed: %v\n", err)
	case !ok:
		s.printf("Insufficient funds!\n")
	default:
		s.printf("Withdrawal successful. New balance: %s\n", FormatMoney(acct.Balance()))
	}
	return nil
}

func (s *Session) transfer(acct *ledger.Account) error {
	dest, err := s.prompt("Enter recipient account number: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter transfer amount: $")
	if err != nil {
		return err
	}

	ok, err := s.ledger.Transfer(acct, dest, amount)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		s.printf("Transfer failed. Recipient account not found.\n")
	case errors.Is(err, ledger.ErrSameAccount):
		s.printf("Transfer failed. Cannot transfer to the same account.\n")
	case err != nil:
		s.logger.Error("transfer failed", zap.String("account", acct.Number()), zap.Error(err))
		s.printf("Transfer failed: %v\n", err)
	case !ok:
		s.printf("Transfer failed. Insufficient funds!\n")
	default:
		s.printf("Transfer successful. New balance: %s\n", FormatMoney(acct.Balance()))
	}
	return nil
}

func (s *Session) statement(acct *ledger.Account) error {
	n := s.opts.StatementCount
	return WriteStatement(s.out, acct.Summary(), acct.Statement(n), n)
}

func (s *Session) changePIN(acct *ledger.Account) error {
	pin, err := s.promptPIN("Enter new 4-digit PIN: ")
	if err != nil {
		return err
	}
	if err := acct.ChangePIN(pin); err != nil {
		s.printf("PIN change failed: %v\n", err)
		return nil
	}
	s.printf("PIN changed successfully.\n")
	return nil
}

func (s *Session) admin() error {
	password, err := s.prompt("Enter admin password: ")
	if err != nil {
		return err
	}
	if password != s.opts.AdminPassword {
		s.logger.Warn("admin login rejected")
		s.printf("Invalid admin password!\n")
		return nil
	}

	for {
		s.printf("\nAdmin Menu\n1. Apply Monthly Interest\n2. View All Accounts\n3. Back to Main Menu\n")
		choice, err := s.prompt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := s.ledger.AccrueInterestAll(); err != nil {
				s.printf("Interest applied with errors:\n%v\n", err)
			} else {
				s.printf("Monthly interest applied to %d accounts.\n", s.ledger.Len())
			}
		case "2":
			if err := WriteAccounts(s.out, s.ledger.ListAccounts()); err != nil {
				return err
			}
		case "3":
			return nil
		default:
			s.printf("Invalid choice. Try again.\n")
		}
	}
}

func (s *Session) promptCategory() (model.Category, error) {
	var category model.Category
	s.printf("Account Type:\n1. Savings Account (%s annual interest)\n2. Current Account (%s annual interest)\n",
		FormatRate(s.opts.Rates[model.CategorySavings]), FormatRate(s.opts.Rates[model.CategoryCurrent]))
	_, err := s.promptUntil("Enter choice: ", "Invalid choice. Please try again.", func(v string) bool {
		switch v {
		case "1":
			category = model.CategorySavings
		case "2":
			category = model.CategoryCurrent
		default:
			return false
		}
		return true
	})
	return category, err
}

func (s *Session) promptPIN(label string) (string, error) {
	return s.promptUntil(label, "PIN must be 4 digits. Try again.", validPIN)
}

func (s *Session) promptAmount(label string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	_, err := s.promptUntil(label, "Enter a positive amount with at most two decimal places.", func(v string) bool {
		d, perr := parseMoney(v)
		if perr != nil || !d.IsPositive() {
			return false
		}
		amount = d
		return true
	})
	return amount, err
}

// promptUntil re-prompts until valid accepts the input.
func (s *Session) promptUntil(label, retry string, valid func(string) bool) (string, error) {
	for {
		v, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(v) {
			return v, nil
		}
		s.printf("%s\n", retry)
	}
}

func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// moneyPattern accepts plain dollar amounts with at most two decimal places.
var moneyPattern = regexp.MustCompile(`^\$?\d{1,15}(\.\d{1,2})?$`)

// parseMoney parses a user-entered amount such as "$12.50".
func parseMoney(s string) (decimal.Decimal, error) {
	if !moneyPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("amount %q is not a dollar amount with at most two decimal places", s)
	}
	return decimal.NewFromString(strings.TrimPrefix(s, "$"))
}
