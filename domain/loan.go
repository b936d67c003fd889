package domain

type EMIInput struct {
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	TenureMonths int     `json:"tenureMonths"`
}

type EMIResult struct {
	EMI           int     `json:"emi"`
	MonthlyRate   float64 `json:"monthlyRate"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}
