package expense

// Expense is the API response model for an expense.
type Expense struct {
	ID                  string `json:"id" doc:"Expense UUID"`
	CategoryID          string `json:"categoryID" doc:"Category UUID"`
	CategoryName        string `json:"categoryName" doc:"Category name, empty when uncategorized"`
	Amount              string `json:"amount" doc:"Decimal amount"`
	Description         string `json:"description" doc:"Free-text description"`
	Date                string `json:"date" doc:"YYYY-MM-DD expense date"`
	RecurringTemplateID string `json:"recurringTemplateID,omitempty" doc:"Template UUID when materialized from a recurring template"`
}
