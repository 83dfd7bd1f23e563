package budget

// Budget is the API response model for a monthly category budget.
type Budget struct {
	ID           string `json:"id" doc:"Budget UUID"`
	CategoryID   string `json:"categoryID" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name"`
	MonthlyLimit string `json:"monthlyLimit" doc:"Decimal monthly limit"`
	Month        int    `json:"month" doc:"Calendar month, 1-12"`
	Year         int    `json:"year" doc:"Calendar year"`
}

// Status is a budget with its spending classification for the month.
type Status struct {
	Budget
	Spent      string `json:"spent" doc:"Decimal amount spent in the category this month"`
	Remaining  string `json:"remaining" doc:"Decimal limit minus spent, negative when over budget"`
	Percentage string `json:"percentage" doc:"Spent as a percentage of the limit, two decimals"`
	Status     string `json:"status" doc:"One of good, approaching, warning, critical, exceeded"`
}
