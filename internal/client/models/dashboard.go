package models

// Dashboard is the aggregate view served by the dashboard composite service.
type Dashboard struct {
	Client             Client        `json:"client"`
	Accounts           []Account     `json:"accounts"`
	RecentTransactions []Transaction `json:"recentTransactions"`
	TotalBalance       float64       `json:"totalBalance"`
	MonthlyIncome      float64       `json:"monthlyIncome"`
	MonthlyExpenses    float64       `json:"monthlyExpenses"`
}

// Statement lists an account's transactions over [StartDate, EndDate].
type Statement struct {
	Account      Account       `json:"account"`
	Transactions []Transaction `json:"transactions"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	TotalCredits float64       `json:"totalCredits"`
	TotalDebits  float64       `json:"totalDebits"`
	Balance      float64       `json:"balance"`
}

// Health is the actuator health body; only Status is read.
type Health struct {
	Status string `json:"status"`
}
