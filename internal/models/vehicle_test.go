package models

import (
	"testing"
	"time"
)

func vehicleWithDates(start, end time.Time) Vehicle {
	daily, weekly, monthly := 100.0, 500.0, 1500.0
	tax, misc := 0.08, 50.0
	return Vehicle{
		DailyRate:       &daily,
		WeeklyRate:      &weekly,
		MonthlyRate:     &monthly,
		Tax:             &tax,
		MiscFees:        &misc,
		StartRentalDate: start,
		EndRentalDate:   end,
	}
}

func day(n int) time.Time {
	return time.Date(2025, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestCalcRatesTiers(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{7, 700},   // daily tier: 100 * 7
		{8, 500},   // weekly tier: 500 * (8 // 7)
		{30, 2000}, // weekly tier: 500 * (30 // 7)
		{31, 1500}, // monthly tier: 1500 * (31 // 30)
	}
	for _, c := range cases {
		v := vehicleWithDates(day(1), day(1+c.days))
		got, ok := v.CalcRates()
		if !ok {
			t.Fatalf("%d days: expected rate available", c.days)
		}
		if got != c.want {
			t.Fatalf("%d days: rate = %.2f, want %.2f", c.days, got, c.want)
		}
	}
}

func TestCalcTaxAndTotal(t *testing.T) {
	// 2025-01-01 to 2025-01-09 is 8 days -> weekly tier, rate 500
	v := vehicleWithDates(day(1), day(9))

	rate, ok := v.CalcRates()
	if !ok || rate != 500 {
		t.Fatalf("rate = %.2f, want 500", rate)
	}

	tax, ok := v.CalcTax(0.08)
	if !ok || tax != 40 {
		t.Fatalf("tax = %.2f, want 40", tax)
	}

	total, ok := v.CalcTotal()
	if !ok || total != 590 {
		t.Fatalf("total = %.2f, want 590 (500 + 40 + 50)", total)
	}
}

func TestCalcRatesUnavailableForZeroDuration(t *testing.T) {
	v := vehicleWithDates(day(5), day(5))
	if _, ok := v.CalcRates(); ok {
		t.Fatalf("expected no rate for a zero-length rental")
	}
	if _, ok := v.CalcTotal(); ok {
		t.Fatalf("expected no total for a zero-length rental")
	}
}

func TestCalcRatesMissingRateCountsAsZero(t *testing.T) {
	v := vehicleWithDates(day(1), day(9))
	v.WeeklyRate = nil
	rate, ok := v.CalcRates()
	if !ok || rate != 0 {
		t.Fatalf("rate = %.2f, want 0 when the tier rate is absent", rate)
	}
}

func TestVehicleValidateDateOrder(t *testing.T) {
	v := vehicleWithDates(day(10), day(1))
	err := v.Validate()
	if err == nil {
		t.Fatalf("expected validation failure for reversed dates")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Message != DateOrderMessage {
		t.Fatalf("message = %q, want %q", verr.Message, DateOrderMessage)
	}

	v = vehicleWithDates(day(1), day(10))
	if err := v.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
