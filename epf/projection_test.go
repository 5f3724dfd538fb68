package epf

import (
	"errors"
	"testing"
)

// flatSeries returns twelve copies of the same monthly amount.
func flatSeries(v float64) []Money {
	s := make([]Money, MonthsInYear)
	for i := range s {
		s[i] = NewMoney(v)
	}
	return s
}

func TestProject_ZeroActivityHoldsOpening(t *testing.T) {
	opening := NewMoneyFromInt(5000)

	p, err := Project(opening, flatSeries(0), flatSeries(0))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	for m, b := range p.Balances {
		if !b.Equal(opening) {
			t.Errorf("month %s: balance = %v, want %v", Month(m), b, opening)
		}
	}
	if !p.Average.Equal(opening) {
		t.Errorf("average = %v, want %v", p.Average, opening)
	}
	if !p.TotalContribution.IsZero() || !p.TotalWithdrawal.IsZero() {
		t.Errorf("totals = %v/%v, want zero", p.TotalContribution, p.TotalWithdrawal)
	}
}

func TestProject_FoldsChronologically(t *testing.T) {
	opening := NewMoneyFromInt(1000)
	contributions := flatSeries(100)
	withdrawals := flatSeries(0)
	withdrawals[3] = NewMoneyFromInt(300) // July

	p, err := Project(opening, contributions, withdrawals)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	want := []int64{1100, 1200, 1300, 1100, 1200, 1300, 1400, 1500, 1600, 1700, 1800, 1900}
	for m, w := range want {
		if got := p.Balances[m].Rupees(); got != w {
			t.Errorf("month %s: balance = %d, want %d", Month(m), got, w)
		}
	}
	if got := p.Final().Rupees(); got != 1900 {
		t.Errorf("final balance = %d, want 1900", got)
	}
	if got := p.TotalContribution.Rupees(); got != 1200 {
		t.Errorf("total contribution = %d, want 1200", got)
	}
	if got := p.TotalWithdrawal.Rupees(); got != 300 {
		t.Errorf("total withdrawal = %d, want 300", got)
	}
}

func TestProject_AverageUsesAllTwelveBalances(t *testing.T) {
	// Balances 1100..2200 in steps of 100; their mean is 1650.
	p, err := Project(NewMoneyFromInt(1000), flatSeries(100), flatSeries(0))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got := p.Average; !got.Equal(NewMoneyFromInt(1650)) {
		t.Errorf("average = %v, want 1650", got)
	}
}

func TestProject_WithdrawalDepressesLaterMonths(t *testing.T) {
	opening := NewMoneyFromInt(20000)
	contributions := flatSeries(500)

	base, err := Project(opening, contributions, flatSeries(0))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	withdrawals := flatSeries(0)
	withdrawals[3] = NewMoneyFromInt(750)
	drawn, err := Project(opening, contributions, withdrawals)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	diff := NewMoneyFromInt(750)
	for m := range base.Balances {
		got := base.Balances[m].Sub(drawn.Balances[m])
		if m < 3 && !got.IsZero() {
			t.Errorf("month %s: balances diverge before the withdrawal: %v", Month(m), got)
		}
		if m >= 3 && !got.Equal(diff) {
			t.Errorf("month %s: balance difference = %v, want %v", Month(m), got, diff)
		}
	}
}

func TestProject_NegativeBalancePassesThrough(t *testing.T) {
	// A May withdrawal larger than the fund drives the balance negative;
	// it is reported as is, never clamped to zero.
	withdrawals := flatSeries(0)
	withdrawals[1] = NewMoneyFromInt(500)

	p, err := Project(NewMoneyFromInt(100), flatSeries(0), withdrawals)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	for m := 1; m < MonthsInYear; m++ {
		if got := p.Balances[m].Rupees(); got != -400 {
			t.Errorf("month %s: balance = %d, want -400", Month(m), got)
		}
	}
	if !p.Average.IsNegative() {
		t.Errorf("average = %v, want negative", p.Average)
	}
}

func TestProject_RejectsShortSeries(t *testing.T) {
	opening := NewMoneyFromInt(0)

	if _, err := Project(opening, make([]Money, 11), flatSeries(0)); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("short contributions error = %v, want ErrSeriesLength", err)
	}
	if _, err := Project(opening, flatSeries(0), make([]Money, 13)); !errors.Is(err, ErrSeriesLength) {
		t.Errorf("long withdrawals error = %v, want ErrSeriesLength", err)
	}
}
