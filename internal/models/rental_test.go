package models

import (
	"testing"
	"time"
)

func TestRentalValidateDateOrder(t *testing.T) {
	r := Rental{
		StartRentalDate: time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC),
		EndRentalDate:   time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation failure for reversed dates")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "start_rental_date" || verr.Message != DateOrderMessage {
		t.Fatalf("got field=%q message=%q", verr.Field, verr.Message)
	}

	r.EndRentalDate = time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	r.StartRentalDate = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestRentalDerivedFields(t *testing.T) {
	r := Rental{
		StartRentalDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),  // Thursday
		EndRentalDate:   time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC), // Saturday
	}

	if got := r.StartDayOfWeek(); got != "Thursday" {
		t.Fatalf("StartDayOfWeek = %q, want Thursday", got)
	}
	if got := r.EndDayOfWeek(); got != "Saturday" {
		t.Fatalf("EndDayOfWeek = %q, want Saturday", got)
	}

	duration, ok := r.RentalDuration()
	if !ok || duration != 30 {
		t.Fatalf("duration = %d, want 30", duration)
	}
	weeks, _ := r.DaysToWeeks()
	if weeks != 4 {
		t.Fatalf("weeks = %d, want 4", weeks)
	}
	months, _ := r.DaysToMonths()
	if months != 1 {
		t.Fatalf("months = %d, want 1", months)
	}

	today := time.Date(2025, time.April, 21, 12, 0, 0, 0, time.UTC)
	till, _ := r.DaysTillRental(today)
	if till != 10 {
		t.Fatalf("days till = %d, want 10", till)
	}

	after := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	past, _ := r.DaysPastRental(after)
	if past != 5 {
		t.Fatalf("days past = %d, want 5", past)
	}
}

func TestServiceValidateAllowsMissingDates(t *testing.T) {
	s := Service{ServiceName: "crane operator", Requestor: "J. Doe"}
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if _, ok := s.ServiceDuration(); ok {
		t.Fatalf("expected duration unavailable without dates")
	}

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.StartServiceDate = &start
	s.EndServiceDate = &end
	if err := s.Validate(); err == nil {
		t.Fatalf("expected validation failure for reversed dates")
	}
}

func TestParseRentalCategory(t *testing.T) {
	if c, ok := ParseRentalCategory("main_equipment"); !ok || c != CategoryMainEquipment {
		t.Fatalf("expected main_equipment to parse")
	}
	if _, ok := ParseRentalCategory("kitchen_equipment"); ok {
		t.Fatalf("expected unknown category to fail")
	}
}
