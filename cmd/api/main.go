package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "campuslend-backend/internal/adapter/http"
	"campuslend-backend/internal/adapter/middleware"
	"campuslend-backend/internal/adapter/repository/mysql"
	"campuslend-backend/internal/config"
	loanDomain "campuslend-backend/internal/domain/loan"
	repaymentDomain "campuslend-backend/internal/domain/repayment"
	studentDomain "campuslend-backend/internal/domain/student"
	txDomain "campuslend-backend/internal/domain/transaction"
	"campuslend-backend/internal/infrastructure/cache"
	"campuslend-backend/internal/infrastructure/db"
	loanuc "campuslend-backend/internal/usecase/loan"
	repaymentuc "campuslend-backend/internal/usecase/repayment"
	statsuc "campuslend-backend/internal/usecase/stats"
	studentuc "campuslend-backend/internal/usecase/student"
	txuc "campuslend-backend/internal/usecase/transaction"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&studentDomain.Student{},
		&loanDomain.Loan{},
		&repaymentDomain.Repayment{},
		&txDomain.Transaction{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories & unit of work
	studentRepo := mysql.NewStudentRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	txRepo := mysql.NewTransactionRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// usecases
	fees := cfg.Policy.Fees()
	scoring := cfg.Policy.Scoring()
	studentUC := studentuc.NewUsecase(studentRepo, unit, scoring, cfg.Policy.InitialMaxLoan, cfg.Policy.InitialTrustScore)
	loanUC := loanuc.NewUsecase(loanRepo, studentRepo, unit, fees, scoring)
	repaymentUC := repaymentuc.NewUsecase(repaymentRepo, loanRepo, studentRepo, loanUC, unit, repaymentuc.SimulatedGateway{})
	transactionUC := txuc.NewUsecase(txRepo, loanRepo)
	statsUC := statsuc.NewUsecase(loanRepo, txRepo)

	// handlers
	h := httpadp.NewHandler()
	studentH := httpadp.NewStudentHandler(studentUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	repaymentH := httpadp.NewRepaymentHandler(repaymentUC)
	transactionH := httpadp.NewTransactionHandler(transactionUC)
	adminH := httpadp.NewAdminHandler(statsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	auth := middleware.JWTAuth(cfg.JWTSecret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// student-facing routes
	v1 := e.Group("/api/v1", auth)

	students := v1.Group("/students")
	students.POST("", studentH.RegisterLedger)
	students.GET("/me", studentH.GetMe)
	students.GET("/me/score", studentH.GetScore)
	students.POST("/me/profile", studentH.CompleteProfile)
	students.PATCH("/me/profile", studentH.UpdateProfile)

	loans := v1.Group("/loans")
	loans.POST("", loanH.RequestLoan, idemp)
	loans.GET("/terms", loanH.GetTerms)
	loans.GET("", loanH.ListMyLoans)
	loans.GET("/:loan_id", loanH.GetLoan)
	loans.GET("/:loan_id/repayments", repaymentH.ListLoanRepayments)

	repayments := v1.Group("/repayments")
	repayments.POST("", repaymentH.MakeRepayment, idemp)
	repayments.GET("", repaymentH.ListMyRepayments)

	v1.GET("/transactions", transactionH.ListMyTransactions)

	// admin routes
	admin := e.Group("/api/v1/admin", auth, middleware.RequireRole(middleware.RoleAdmin))
	admin.GET("/loans", loanH.ListLoans)
	admin.GET("/loans/overdue-candidates", loanH.OverdueCandidates)
	admin.GET("/loans/:loan_id", loanH.GetLoanAdmin)
	admin.POST("/loans/:loan_id/approve", loanH.ApproveLoan)
	admin.POST("/loans/:loan_id/reject", loanH.RejectLoan)
	admin.POST("/loans/:loan_id/disburse", loanH.DisburseLoan, idemp)
	admin.POST("/loans/:loan_id/overdue", loanH.MarkOverdue)
	admin.POST("/loans/:loan_id/default", loanH.MarkDefaulted)
	admin.GET("/students", studentH.ListStudents)
	admin.GET("/repayments", repaymentH.ListRepayments)
	admin.GET("/repayments/:repayment_id", repaymentH.GetRepayment)
	admin.GET("/transactions", transactionH.ListTransactions)
	admin.GET("/transactions/stats", adminH.TransactionStats)
	admin.GET("/transactions/:reference", transactionH.GetByReference)
	admin.GET("/loans/:loan_id/transactions", transactionH.ListLoanTransactions)
	admin.GET("/stats/loans", adminH.LoanStats)
	admin.GET("/dashboard", adminH.Dashboard)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
