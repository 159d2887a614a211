package assistant

import "github.com/shopspring/decimal"

// Budget holds the raw income/expenses strings exactly as entered. Values are
// parsed on demand; they are never normalized in place.
type Budget struct {
	Income   string
	Expenses string
}

type SavingsKind string

const (
	SavingsIncomplete SavingsKind = "incomplete"
	SavingsPositive   SavingsKind = "positive"
	SavingsWarning    SavingsKind = "warning"
)

type Savings struct {
	Kind   SavingsKind
	Amount decimal.Decimal
}

// SetIncome stores the raw value verbatim. Income is not validated against
// expenses at entry time.
func (b *Budget) SetIncome(raw string) {
	b.Income = raw
}

// SetExpenses accepts the value only when it does not exceed the current
// income, treating empty or non-numeric fields as zero for the comparison.
// A rejected value leaves the stored expenses unchanged.
func (b *Budget) SetExpenses(raw string) error {
	expenses := amountOrZero(raw)
	income := amountOrZero(b.Income)

	if expenses.GreaterThan(income) {
		return ErrExpensesExceedIncome
	}

	b.Expenses = raw
	return nil
}

// ComputeSavings derives the savings result from the stored fields. Empty or
// non-numeric fields make the result incomplete; the warning branch guards
// against stored state that violates the entry rule.
func (b Budget) ComputeSavings() Savings {
	income, incomeOK := parseAmount(b.Income)
	expenses, expensesOK := parseAmount(b.Expenses)

	if !incomeOK || !expensesOK {
		return Savings{Kind: SavingsIncomplete}
	}

	if income.GreaterThanOrEqual(expenses) {
		return Savings{Kind: SavingsPositive, Amount: income.Sub(expenses)}
	}

	return Savings{Kind: SavingsWarning}
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

func amountOrZero(raw string) decimal.Decimal {
	value, ok := parseAmount(raw)
	if !ok {
		return decimal.Zero
	}
	return value
}
