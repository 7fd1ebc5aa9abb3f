package config

import (
	"errors"

	"campuslend-backend/internal/domain/loan"
	"campuslend-backend/internal/domain/student"
)

// Policy holds every lending constant in one injected structure so fee and
// trust arithmetic can be tuned and tested independently of the usecases.
type Policy struct {
	// Fees, percentages of principal.
	FeePercentage     float64
	LateFeePercentage float64
	GracePeriodDays   int

	// Trust score adjustments on full repayment.
	TrustScoreIncrement float64
	TrustScorePenalty   float64
	MinTrustScore       float64
	MaxTrustScore       float64

	// Borrowing-limit feedback loop.
	LimitGrowthFactor float64
	LimitShrinkFactor float64
	MaxLoanCeiling    float64
	MinLoanFloor      float64
	InitialMaxLoan    float64
	InitialTrustScore float64

	// Eligibility thresholds.
	EligibilityMinScore float64
	MaxLateRatio        float64

	// Due-date window for new loans.
	MinDueDays   int
	MaxDueMonths int
}

func LoadPolicy() Policy {
	return Policy{
		FeePercentage:     getenvFloat("FEE_PERCENTAGE", 5),
		LateFeePercentage: getenvFloat("LATE_FEE_PERCENTAGE", 2),
		GracePeriodDays:   getenvInt("GRACE_PERIOD_DAYS", 7),

		TrustScoreIncrement: getenvFloat("TRUST_SCORE_INCREMENT", 5),
		TrustScorePenalty:   getenvFloat("TRUST_SCORE_PENALTY", 10),
		MinTrustScore:       0,
		MaxTrustScore:       100,

		LimitGrowthFactor: getenvFloat("LIMIT_GROWTH_FACTOR", 1.1),
		LimitShrinkFactor: getenvFloat("LIMIT_SHRINK_FACTOR", 0.9),
		MaxLoanCeiling:    getenvFloat("MAX_LOAN_CEILING", 500000),
		MinLoanFloor:      getenvFloat("MIN_LOAN_FLOOR", 10000),
		InitialMaxLoan:    getenvFloat("INITIAL_MAX_LOAN", 50000),
		InitialTrustScore: getenvFloat("INITIAL_TRUST_SCORE", 0),

		EligibilityMinScore: getenvFloat("ELIGIBILITY_MIN_SCORE", 20),
		MaxLateRatio:        getenvFloat("MAX_LATE_RATIO", 0.5),

		MinDueDays:   getenvInt("MIN_DUE_DAYS", 7),
		MaxDueMonths: getenvInt("MAX_DUE_MONTHS", 3),
	}
}

// Fees maps the loaded constants onto the loan package's policy type.
func (p Policy) Fees() loan.FeePolicy {
	return loan.FeePolicy{
		FeePercentage:     p.FeePercentage,
		LateFeePercentage: p.LateFeePercentage,
		GracePeriodDays:   p.GracePeriodDays,
		MinDueDays:        p.MinDueDays,
		MaxDueMonths:      p.MaxDueMonths,
	}
}

// Scoring maps the loaded constants onto the student package's policy type.
func (p Policy) Scoring() student.ScorePolicy {
	return student.ScorePolicy{
		Increment:        p.TrustScoreIncrement,
		Penalty:          p.TrustScorePenalty,
		MinScore:         p.MinTrustScore,
		MaxScore:         p.MaxTrustScore,
		GrowthFactor:     p.LimitGrowthFactor,
		ShrinkFactor:     p.LimitShrinkFactor,
		MaxLoanCeiling:   p.MaxLoanCeiling,
		MinLoanFloor:     p.MinLoanFloor,
		MinEligibleScore: p.EligibilityMinScore,
		MaxLateRatio:     p.MaxLateRatio,
	}
}

func (p Policy) Validate() error {
	if p.FeePercentage < 0 || p.FeePercentage > 100 {
		return errors.New("FEE_PERCENTAGE must be within [0,100]")
	}
	if p.LateFeePercentage < 0 || p.LateFeePercentage > 100 {
		return errors.New("LATE_FEE_PERCENTAGE must be within [0,100]")
	}
	if p.LimitGrowthFactor < 1 {
		return errors.New("LIMIT_GROWTH_FACTOR must be >= 1")
	}
	if p.LimitShrinkFactor <= 0 || p.LimitShrinkFactor > 1 {
		return errors.New("LIMIT_SHRINK_FACTOR must be within (0,1]")
	}
	if p.MinLoanFloor > p.MaxLoanCeiling {
		return errors.New("MIN_LOAN_FLOOR exceeds MAX_LOAN_CEILING")
	}
	if p.MinDueDays < 0 || p.MaxDueMonths <= 0 {
		return errors.New("invalid due-date window")
	}
	return nil
}
