// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/adapter"
	"github.com/finlog/backend/internal/application/usecase/ownership"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindByUserAndType(ctx context.Context, userID uuid.UUID, categoryType entity.CategoryType) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeCategoryRepo) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	categories   map[uuid.UUID]*entity.Category
	lastFilter   adapter.TransactionFilter
	lastPaging   adapter.TransactionPagination
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := f.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (f *fakeTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	transaction, ok := f.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	return &entity.TransactionWithCategory{
		Transaction: &copied,
		Category:    f.categories[transaction.CategoryID],
	}, nil
}

func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) ([]*entity.TransactionWithCategory, error) {
	f.lastFilter = filter
	f.lastPaging = pagination
	return nil, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.transactions, id)
	return nil
}

type fixture struct {
	categoryRepo    *fakeCategoryRepo
	transactionRepo *fakeTransactionRepo
	guard           *ownership.Guard
	userID          uuid.UUID
	category        *entity.Category
}

func newFixture() *fixture {
	categoryRepo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	transactionRepo := &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		categories:   categoryRepo.categories,
	}
	userID := uuid.New()
	category := entity.NewCategory("Food & Dining", "#F44336", "🍽️", entity.CategoryTypeExpense, userID)
	categoryRepo.categories[category.ID] = category
	return &fixture{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		guard:           ownership.NewGuard(categoryRepo, transactionRepo),
		userID:          userID,
		category:        category,
	}
}

func assertTransactionErrorCode(t *testing.T, err error, want domainerror.TransactionErrorCode) {
	t.Helper()
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected TransactionError, got %v", err)
	}
	if txnErr.Code != want {
		t.Errorf("expected code %s, got %s", want, txnErr.Code)
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("creates transaction against an owned category", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.guard)

		output, err := useCase.Execute(ctx, CreateTransactionInput{
			UserID:      f.userID,
			CategoryID:  f.category.ID,
			Amount:      decimal.RequireFromString("300.00"),
			Description: "Groceries",
			Date:        date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Amount.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("amount mismatch: %s", output.Transaction.Amount)
		}
		if output.Category.ID != f.category.ID {
			t.Error("expected the resolved category in the output")
		}
		if _, ok := f.transactionRepo.transactions[output.Transaction.ID]; !ok {
			t.Error("transaction was not persisted")
		}
	})

	t.Run("rejects a foreign category without writing", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.guard)

		_, err := useCase.Execute(ctx, CreateTransactionInput{
			UserID:     uuid.New(), // not the category owner
			CategoryID: f.category.ID,
			Amount:     decimal.RequireFromString("10.00"),
			Date:       date,
		})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNotFound {
			t.Fatalf("expected category not-found, got %v", err)
		}
		if len(f.transactionRepo.transactions) != 0 {
			t.Error("no transaction may be written when the category check fails")
		}
	})

	t.Run("rejects oversized description and notes", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.guard)

		_, err := useCase.Execute(ctx, CreateTransactionInput{
			UserID:      f.userID,
			CategoryID:  f.category.ID,
			Amount:      decimal.RequireFromString("10.00"),
			Description: strings.Repeat("a", MaxDescriptionLength+1),
			Date:        date,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeDescriptionTooLong)

		_, err = useCase.Execute(ctx, CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: f.category.ID,
			Amount:     decimal.RequireFromString("10.00"),
			Notes:      strings.Repeat("a", MaxNotesLength+1),
			Date:       date,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeNotesTooLong)
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		f := newFixture()
		useCase := NewCreateTransactionUseCase(f.transactionRepo, f.guard)

		_, err := useCase.Execute(ctx, CreateTransactionInput{
			UserID:     f.userID,
			CategoryID: f.category.ID,
			Amount:     decimal.RequireFromString("10.00"),
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionDate)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults skip and limit", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.transactionRepo)

		output, err := useCase.Execute(ctx, ListTransactionsInput{UserID: f.userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Skip != 0 || output.Limit != DefaultListLimit {
			t.Errorf("expected defaults 0/%d, got %d/%d", DefaultListLimit, output.Skip, output.Limit)
		}
		if f.transactionRepo.lastPaging.Limit != DefaultListLimit {
			t.Error("default limit must reach the repository")
		}
	})

	t.Run("rejects out-of-range limits", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.transactionRepo)

		for _, limit := range []int{0, -1, MaxListLimit + 1} {
			l := limit
			_, err := useCase.Execute(ctx, ListTransactionsInput{UserID: f.userID, Limit: &l})
			assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidListLimit)
		}
	})

	t.Run("rejects negative skip", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.transactionRepo)

		skip := -1
		_, err := useCase.Execute(ctx, ListTransactionsInput{UserID: f.userID, Skip: &skip})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidListLimit)
	})

	t.Run("rejects inverted date ranges", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.transactionRepo)

		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, -1, 0)
		_, err := useCase.Execute(ctx, ListTransactionsInput{
			UserID:    f.userID,
			StartDate: &start,
			EndDate:   &end,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionDate)
	})

	t.Run("passes filters through scoped to the user", func(t *testing.T) {
		f := newFixture()
		useCase := NewListTransactionsUseCase(f.transactionRepo)

		categoryID := f.category.ID
		if _, err := useCase.Execute(ctx, ListTransactionsInput{
			UserID:     f.userID,
			CategoryID: &categoryID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.transactionRepo.lastFilter.UserID != f.userID {
			t.Error("filter must carry the acting user")
		}
		if f.transactionRepo.lastFilter.CategoryID == nil || *f.transactionRepo.lastFilter.CategoryID != categoryID {
			t.Error("category filter was dropped")
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	seed := func(f *fixture) *entity.Transaction {
		transaction := entity.NewTransaction(
			f.userID, f.category.ID,
			decimal.RequireFromString("300.00"),
			"Groceries", "", date,
		)
		f.transactionRepo.transactions[transaction.ID] = transaction
		return transaction
	}

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		f := newFixture()
		transaction := seed(f)
		useCase := NewUpdateTransactionUseCase(f.transactionRepo, f.guard)

		amount := decimal.RequireFromString("42.50")
		output, err := useCase.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        f.userID,
			Amount:        &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Amount.Equal(amount) {
			t.Errorf("amount not updated: %s", output.Transaction.Amount)
		}
		if output.Transaction.Description != "Groceries" {
			t.Error("omitted description must keep its prior value")
		}
	})

	t.Run("recategorizing checks ownership of the new category", func(t *testing.T) {
		f := newFixture()
		transaction := seed(f)
		useCase := NewUpdateTransactionUseCase(f.transactionRepo, f.guard)

		foreign := entity.NewCategory("Other", "#000000", "x", entity.CategoryTypeExpense, uuid.New())
		f.categoryRepo.categories[foreign.ID] = foreign

		_, err := useCase.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        f.userID,
			CategoryID:    &foreign.ID,
		})
		var catErr *domainerror.CategoryError
		if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNotFound {
			t.Fatalf("expected category not-found, got %v", err)
		}
		if f.transactionRepo.transactions[transaction.ID].CategoryID != f.category.ID {
			t.Error("failed recategorization must not change the stored row")
		}
	})

	t.Run("foreign transaction is reported as missing", func(t *testing.T) {
		f := newFixture()
		transaction := seed(f)
		useCase := NewUpdateTransactionUseCase(f.transactionRepo, f.guard)

		amount := decimal.RequireFromString("1.00")
		_, err := useCase.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        uuid.New(),
			Amount:        &amount,
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	transaction := entity.NewTransaction(
		f.userID, f.category.ID,
		decimal.RequireFromString("10.00"),
		"", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	f.transactionRepo.transactions[transaction.ID] = transaction
	useCase := NewDeleteTransactionUseCase(f.transactionRepo, f.guard)

	t.Run("foreign transaction cannot be deleted", func(t *testing.T) {
		_, err := useCase.Execute(ctx, DeleteTransactionInput{
			TransactionID: transaction.ID,
			UserID:        uuid.New(),
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
		if _, ok := f.transactionRepo.transactions[transaction.ID]; !ok {
			t.Fatal("transaction must survive a foreign delete attempt")
		}
	})

	t.Run("owner deletes successfully", func(t *testing.T) {
		output, err := useCase.Execute(ctx, DeleteTransactionInput{
			TransactionID: transaction.ID,
			UserID:        f.userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if _, ok := f.transactionRepo.transactions[transaction.ID]; ok {
			t.Error("transaction should have been removed")
		}
	})
}
