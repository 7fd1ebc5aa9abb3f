package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "campuslend-backend/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByLoanID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}

	called := false
	m := &Repo{
		GetByLoanIDFn: func(gotCtx context.Context, loanID string) (*domain.Loan, error) {
			called = true
			if loanID != want.LoanID {
				t.Fatalf("GetByLoanID loanID mismatch: got %s", loanID)
			}
			return want, nil
		},
	}
	got, err := m.GetByLoanID(ctx, want.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByLoanID: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByLoanIDFn not called")
	}

	// Default (nil func) → errUnimplemented
	m = &Repo{}
	got, err = m.GetByLoanID(ctx, want.LoanID)
	if !errors.Is(err, errUnimplemented) {
		t.Fatalf("GetByLoanID default: want errUnimplemented, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByLoanID default: want nil loan, got %+v", got)
	}
}

func TestRepo_GetActiveByStudentID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{LoanID: "cccccccccccccccccccccccccccccccc", StudentID: 9}

	m := &Repo{
		GetActiveByStudentIDFn: func(gotCtx context.Context, studentID uint64) (*domain.Loan, error) {
			if studentID != 9 {
				t.Fatalf("studentID mismatch: got %d", studentID)
			}
			return want, nil
		},
	}
	got, err := m.GetActiveByStudentID(ctx, 9)
	if err != nil || got != want {
		t.Fatalf("GetActiveByStudentID: got %+v, %v", got, err)
	}

	m = &Repo{}
	if _, err := m.GetActiveByStudentID(ctx, 9); !errors.Is(err, errUnimplemented) {
		t.Fatalf("default: want errUnimplemented, got %v", err)
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{LoanID: "dddddddddddddddddddddddddddddddd"}

	called := false
	wantErr := errors.New("save-fail")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("SaveFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}
