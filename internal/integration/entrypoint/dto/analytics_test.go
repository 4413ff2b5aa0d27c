package dto

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/usecase/analytics"
	"github.com/finlog/backend/internal/domain/entity"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("failed to parse decimal %q: %v", value, err)
	}
	return d
}

func TestToSummaryResponseWireShape(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	output := &analytics.GetSummaryOutput{
		TotalIncome:      mustDecimal(t, "1000.00"),
		TotalExpenses:    mustDecimal(t, "300.00"),
		Balance:          mustDecimal(t, "700.00"),
		TransactionCount: 2,
		StartDate:        &start,
		EndDate:          &end,
	}

	raw, err := json.Marshal(ToSummaryResponse(output))
	if err != nil {
		t.Fatalf("failed to marshal summary: %v", err)
	}

	t.Run("amounts serialize as JSON numbers", func(t *testing.T) {
		for _, want := range []string{`"total_income":1000`, `"total_expenses":300`, `"balance":700`} {
			if !bytes.Contains(raw, []byte(want)) {
				t.Errorf("summary JSON missing %s: %s", want, raw)
			}
		}
		if bytes.Contains(raw, []byte(`"total_income":"`)) {
			t.Errorf("total_income serialized as a string: %s", raw)
		}
	})

	t.Run("period echoes the requested range", func(t *testing.T) {
		var decoded map[string]interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("failed to decode summary: %v", err)
		}
		period, ok := decoded["period"].(map[string]interface{})
		if !ok {
			t.Fatalf("period missing or not an object: %s", raw)
		}
		if period["start_date"] != "2024-02-01" || period["end_date"] != "2024-02-28" {
			t.Errorf("unexpected period %v", period)
		}
	})
}

func TestToSpendingByCategoryResponseWireShape(t *testing.T) {
	output := &analytics.GetSpendingByCategoryOutput{
		Spending: []analytics.CategorySpending{
			{
				CategoryID:   uuid.New(),
				CategoryName: "Food & Dining",
				Color:        "#EF4444",
				Amount:       mustDecimal(t, "300.00"),
				Percentage:   0,
			},
		},
	}

	raw, err := json.Marshal(ToSpendingByCategoryResponse(output))
	if err != nil {
		t.Fatalf("failed to marshal spending: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("[")) {
		t.Fatalf("spending response is not a top-level array: %s", raw)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatalf("failed to decode spending rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row["category"] != "Food & Dining" {
		t.Errorf("expected category name under 'category', got %v", row["category"])
	}
	if amount, ok := row["amount"].(float64); !ok || amount != 300 {
		t.Errorf("expected numeric amount 300, got %v", row["amount"])
	}
	if percentage, ok := row["percentage"].(float64); !ok || percentage != 0 {
		t.Errorf("expected numeric percentage 0, got %v", row["percentage"])
	}
}

func TestToMonthlyTrendsResponseWireShape(t *testing.T) {
	output := &analytics.GetMonthlyTrendsOutput{Year: 2024}
	for month := 1; month <= 12; month++ {
		output.Trends = append(output.Trends, analytics.MonthlyTrend{
			Month:    month,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Balance:  decimal.Zero,
		})
	}
	output.Trends[0].Income = mustDecimal(t, "1000.00")
	output.Trends[0].Balance = mustDecimal(t, "1000.00")
	output.Trends[1].Expenses = mustDecimal(t, "300.00")

	raw, err := json.Marshal(ToMonthlyTrendsResponse(output))
	if err != nil {
		t.Fatalf("failed to marshal trends: %v", err)
	}

	var decoded struct {
		Year     int                      `json:"year"`
		Income   []map[string]interface{} `json:"income"`
		Expenses []map[string]interface{} `json:"expenses"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to decode trends: %v", err)
	}

	t.Run("income and expenses are parallel dense series", func(t *testing.T) {
		if len(decoded.Income) != 12 || len(decoded.Expenses) != 12 {
			t.Fatalf("expected 12 entries per series, got income=%d expenses=%d", len(decoded.Income), len(decoded.Expenses))
		}
		for i := 0; i < 12; i++ {
			wantMonth := float64(i + 1)
			if decoded.Income[i]["month"] != wantMonth || decoded.Expenses[i]["month"] != wantMonth {
				t.Errorf("series out of order at index %d: income=%v expenses=%v", i, decoded.Income[i]["month"], decoded.Expenses[i]["month"])
			}
		}
	})

	t.Run("amounts land in the right series", func(t *testing.T) {
		if decoded.Income[0]["amount"] != float64(1000) {
			t.Errorf("expected January income 1000, got %v", decoded.Income[0]["amount"])
		}
		if decoded.Expenses[1]["amount"] != float64(300) {
			t.Errorf("expected February expenses 300, got %v", decoded.Expenses[1]["amount"])
		}
		if decoded.Income[11]["amount"] != float64(0) {
			t.Errorf("expected December income 0, got %v", decoded.Income[11]["amount"])
		}
	})

	t.Run("amounts serialize as JSON numbers", func(t *testing.T) {
		if !bytes.Contains(raw, []byte(`"amount":1000`)) {
			t.Errorf("trends JSON carries no numeric amount: %s", raw)
		}
		if bytes.Contains(raw, []byte(`"amount":"`)) {
			t.Errorf("trends JSON carries a string amount: %s", raw)
		}
	})
}

func TestToRecentTransactionsResponseWireShape(t *testing.T) {
	category := &entity.Category{
		ID:    uuid.New(),
		Name:  "Food & Dining",
		Color: "#EF4444",
		Type:  entity.CategoryTypeExpense,
	}
	transaction := &entity.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		CategoryID:  category.ID,
		Amount:      mustDecimal(t, "42.75"),
		Description: "groceries",
		Date:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(ToRecentTransactionsResponse([]*entity.TransactionWithCategory{
		{Transaction: transaction, Category: category},
	}))
	if err != nil {
		t.Fatalf("failed to marshal recent transactions: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("[")) {
		t.Fatalf("recent transactions response is not a top-level array: %s", raw)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		t.Fatalf("failed to decode recent transaction rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row["transaction_date"] != "2024-02-10" {
		t.Errorf("expected transaction_date 2024-02-10, got %v", row["transaction_date"])
	}
	if amount, ok := row["amount"].(float64); !ok || amount != 42.75 {
		t.Errorf("expected numeric amount 42.75, got %v", row["amount"])
	}
	nested, ok := row["category"].(map[string]interface{})
	if !ok {
		t.Fatalf("category missing or not an object: %s", raw)
	}
	if nested["name"] != "Food & Dining" || nested["type"] != "expense" {
		t.Errorf("unexpected nested category %v", nested)
	}
}
