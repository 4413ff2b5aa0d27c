// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finlog/backend/internal/application/usecase/analytics"
	"github.com/finlog/backend/internal/domain/entity"
)

// PeriodResponse echoes the requested date range. Unbounded sides are null.
type PeriodResponse struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SummaryResponse represents the financial summary. Arithmetic runs on
// decimals internally; amounts become JSON numbers only here.
type SummaryResponse struct {
	TotalIncome      float64        `json:"total_income"`
	TotalExpenses    float64        `json:"total_expenses"`
	Balance          float64        `json:"balance"`
	TransactionCount int            `json:"transaction_count"`
	Period           PeriodResponse `json:"period"`
}

// CategorySpendingResponse represents one row of the spending breakdown.
// Percentage is always zero; clients compute shares themselves.
type CategorySpendingResponse struct {
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	CategoryID string  `json:"category_id"`
}

// MonthlyTrendPointResponse is one month in a trend series.
type MonthlyTrendPointResponse struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// MonthlyTrendsResponse carries the two dense per-type series for one year,
// each exactly twelve months, in order.
type MonthlyTrendsResponse struct {
	Year     int                         `json:"year"`
	Income   []MonthlyTrendPointResponse `json:"income"`
	Expenses []MonthlyTrendPointResponse `json:"expenses"`
}

// RecentTransactionCategoryResponse is the category summary nested in a
// recent-transactions row.
type RecentTransactionCategoryResponse struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

// RecentTransactionResponse represents one row of the recent activity feed.
type RecentTransactionResponse struct {
	ID              string                            `json:"id"`
	Amount          float64                           `json:"amount"`
	Description     string                            `json:"description"`
	TransactionDate string                            `json:"transaction_date"`
	Category        RecentTransactionCategoryResponse `json:"category"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      output.TotalIncome.InexactFloat64(),
		TotalExpenses:    output.TotalExpenses.InexactFloat64(),
		Balance:          output.Balance.InexactFloat64(),
		TransactionCount: output.TransactionCount,
		Period: PeriodResponse{
			StartDate: formatDatePtr(output.StartDate),
			EndDate:   formatDatePtr(output.EndDate),
		},
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

// ToSpendingByCategoryResponse converts the breakdown to its wire shape, a
// bare array of per-category rows.
func ToSpendingByCategoryResponse(output *analytics.GetSpendingByCategoryOutput) []CategorySpendingResponse {
	spending := make([]CategorySpendingResponse, len(output.Spending))
	for i, row := range output.Spending {
		spending[i] = CategorySpendingResponse{
			Category:   row.CategoryName,
			Color:      row.Color,
			Amount:     row.Amount.InexactFloat64(),
			Percentage: row.Percentage,
			CategoryID: row.CategoryID.String(),
		}
	}
	return spending
}

// ToMonthlyTrendsResponse splits the dense trend rows into the income and
// expense series the API exposes.
func ToMonthlyTrendsResponse(output *analytics.GetMonthlyTrendsOutput) MonthlyTrendsResponse {
	income := make([]MonthlyTrendPointResponse, len(output.Trends))
	expenses := make([]MonthlyTrendPointResponse, len(output.Trends))
	for i, trend := range output.Trends {
		income[i] = MonthlyTrendPointResponse{Month: trend.Month, Amount: trend.Income.InexactFloat64()}
		expenses[i] = MonthlyTrendPointResponse{Month: trend.Month, Amount: trend.Expenses.InexactFloat64()}
	}
	return MonthlyTrendsResponse{
		Year:     output.Year,
		Income:   income,
		Expenses: expenses,
	}
}

// ToRecentTransactionsResponse converts recent transactions to their wire
// shape, a bare array of enriched rows.
func ToRecentTransactionsResponse(transactions []*entity.TransactionWithCategory) []RecentTransactionResponse {
	responses := make([]RecentTransactionResponse, len(transactions))
	for i, item := range transactions {
		response := RecentTransactionResponse{
			ID:              item.Transaction.ID.String(),
			Amount:          item.Transaction.Amount.InexactFloat64(),
			Description:     item.Transaction.Description,
			TransactionDate: item.Transaction.Date.Format("2006-01-02"),
		}
		if item.Category != nil {
			response.Category = RecentTransactionCategoryResponse{
				Name:  item.Category.Name,
				Type:  string(item.Category.Type),
				Color: item.Category.Color,
			}
		}
		responses[i] = response
	}
	return responses
}
