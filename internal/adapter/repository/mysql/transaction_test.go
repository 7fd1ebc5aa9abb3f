package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	txDomain "campuslend-backend/internal/domain/transaction"

	"gorm.io/gorm"
)

func seedTransaction(t *testing.T, db *gorm.DB, reference string, typ txDomain.Type, amount float64, createdAt time.Time) {
	t.Helper()
	if err := db.Create(&transactionSQLite{
		Reference: reference,
		Type:      string(typ),
		Status:    string(txDomain.StatusCompleted),
		Amount:    amount,
		UserID:    "uuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuu",
		LoanID:    1,
		CreatedAt: createdAt,
	}).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
}

func TestTransactionCreateAndGetByReference(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	tr := &txDomain.Transaction{
		Reference: "TXN-1-AAAA0000",
		Type:      txDomain.TypeDisbursement,
		Amount:    50_000,
		Status:    txDomain.StatusCompleted,
		UserID:    "uuuuuuuuuuuuuuuuuuuuuuuuuuuuuuuu",
		LoanID:    1,
	}
	if err := repo.Create(ctx, tr); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByReference(ctx, "TXN-1-AAAA0000")
	if err != nil {
		t.Fatalf("GetByReference: %v", err)
	}
	if got.Type != txDomain.TypeDisbursement || got.Amount != 50_000 {
		t.Fatalf("unexpected transaction: %+v", got)
	}
}

func TestTransactionGetByReference_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.GetByReference(context.Background(), "TXN-0-MISSING0")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestTransactionList_Filters(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedTransaction(t, db, "TXN-1-AAAA0001", txDomain.TypeDisbursement, 50_000, now.AddDate(0, 0, -10))
	seedTransaction(t, db, "TXN-1-AAAA0002", txDomain.TypeFee, 2_500, now.AddDate(0, 0, -10))
	seedTransaction(t, db, "TXN-1-AAAA0003", txDomain.TypeRepayment, 20_000, now.AddDate(0, 0, -1))

	all, total, err := repo.List(ctx, 1, 10, txDomain.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("total=%d len=%d", total, len(all))
	}

	fees, total, err := repo.List(ctx, 1, 10, txDomain.ListFilter{Type: txDomain.TypeFee})
	if err != nil {
		t.Fatalf("List by type: %v", err)
	}
	if total != 1 || fees[0].Reference != "TXN-1-AAAA0002" {
		t.Fatalf("fees: %+v", fees)
	}

	recent, total, err := repo.List(ctx, 1, 10, txDomain.ListFilter{
		From: now.AddDate(0, 0, -2), To: now,
	})
	if err != nil {
		t.Fatalf("List by range: %v", err)
	}
	if total != 1 || recent[0].Reference != "TXN-1-AAAA0003" {
		t.Fatalf("recent: %+v", recent)
	}
}

func TestTransactionStats(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	// Empty table: zeroed stats, no error.
	s, err := repo.Stats(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Stats empty: %v", err)
	}
	if s.TransactionCount != 0 || s.TotalDisbursements != 0 {
		t.Fatalf("empty stats: %+v", s)
	}

	seedTransaction(t, db, "TXN-1-AAAA0001", txDomain.TypeDisbursement, 50_000, now.AddDate(0, 0, -10))
	seedTransaction(t, db, "TXN-1-AAAA0002", txDomain.TypeFee, 2_500, now.AddDate(0, 0, -10))
	seedTransaction(t, db, "TXN-1-AAAA0003", txDomain.TypeRepayment, 20_000, now.AddDate(0, 0, -1))

	s, err = repo.Stats(ctx, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalDisbursements != 50_000 || s.TotalFees != 2_500 || s.TotalRepayments != 20_000 {
		t.Fatalf("sums: %+v", s)
	}
	if s.TransactionCount != 3 {
		t.Fatalf("count = %d", s.TransactionCount)
	}

	// Range excludes the older rows.
	s, err = repo.Stats(ctx, now.AddDate(0, 0, -2), now)
	if err != nil {
		t.Fatalf("Stats ranged: %v", err)
	}
	if s.TotalDisbursements != 0 || s.TotalRepayments != 20_000 || s.TransactionCount != 1 {
		t.Fatalf("ranged: %+v", s)
	}
}
