package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		LoanID string `validate:"hex32"`
	}
	cv := NewValidator()

	ok := P{LoanID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		err := cv.Validate(P{LoanID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{10_000, 52_500.50, 0.9, 1.25} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestFieldErrorMapping(t *testing.T) {
	type P struct {
		Name    string  `validate:"required"`
		Min     int     `validate:"gte=10"`
		Max     int     `validate:"lte=5"`
		Purpose string  `validate:"oneof=tuition books"`
		Amount  float64 `validate:"gt=0"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Min: 9, Max: 6, Purpose: "other", Amount: 0})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Purpose", "must be one of") {
		t.Fatalf("missing oneof message for Purpose: %+v", fe)
	}
	if !containsFieldMsg(fe, "Amount", "greater than 0") {
		t.Fatalf("missing gt message for Amount: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
