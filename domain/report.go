package domain

import "time"

type PersonalInfo struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
}

type ActiveLoan struct {
	Type                  string  `json:"type"`
	Lender                string  `json:"lender"`
	Amount                int     `json:"amount"`
	EMI                   int     `json:"emi"`
	RemainingTenureMonths int     `json:"remainingTenure"`
	InterestRatePct       float64 `json:"interestRate"`
}

type ClosedLoan struct {
	Type        string `json:"type"`
	Lender      string `json:"lender"`
	Amount      int    `json:"amount"`
	ClosureDate string `json:"closureDate"`
}

type RejectedLoan struct {
	Type            string `json:"type"`
	Lender          string `json:"lender"`
	Amount          int    `json:"amount"`
	ApplicationDate string `json:"applicationDate"`
	RejectionReason string `json:"reason"`
}

type LoanPortfolio struct {
	Active   []ActiveLoan   `json:"active"`
	Closed   []ClosedLoan   `json:"closed"`
	Rejected []RejectedLoan `json:"rejected"`
}

type PaymentHistory struct {
	OnTime        int `json:"onTime"`
	Late          int `json:"late"`
	TotalPayments int `json:"totalPayments"`
	TotalAccounts int `json:"totalAccounts"`
}

type OldestAccount struct {
	Type     string `json:"type"`
	AgeYears int    `json:"ageYears"`
}

// CreditReport is the full synthesized report for a fictitious subject.
type CreditReport struct {
	ReportID          string              `json:"reportId"`
	Seed              uint64              `json:"seed"`
	GeneratedAt       time.Time           `json:"generatedAt"`
	PersonalInfo      PersonalInfo        `json:"personalInfo"`
	CreditTier        CreditTier          `json:"creditTier"`
	BureauScores      []BureauScoreRecord `json:"bureauScores"`
	Loans             LoanPortfolio       `json:"loans"`
	PaymentHistory    PaymentHistory      `json:"paymentHistory"`
	CreditUtilization int                 `json:"creditUtilization"`
	Inquiries         int                 `json:"inquiries"`
	OldestAccount     OldestAccount       `json:"oldestAccount"`
}
