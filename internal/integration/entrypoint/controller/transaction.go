// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finlog/backend/internal/application/usecase/transaction"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/entrypoint/dto"
	"github.com/finlog/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
	}

	if skipStr := ctx.Query("skip"); skipStr != "" {
		skip, err := strconv.Atoi(skipStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "skip must be an integer",
				Code:  string(domainerror.ErrCodeInvalidListLimit),
			})
			return
		}
		input.Skip = &skip
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be an integer",
				Code:  string(domainerror.ErrCodeInvalidListLimit),
			})
			return
		}
		input.Limit = &limit
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.StartDate = &startDate
	}

	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.Skip, output.Limit))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondInvalidAmount(ctx)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondInvalidDate(ctx)
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: req.Description,
		Notes:       req.Notes,
		Date:        date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "Invalid transaction ID format")
	if !ok {
		return
	}

	input := transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction.Transaction, output.Transaction.Category))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "Invalid transaction ID format")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
		Notes:         req.Notes,
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			respondInvalidAmount(ctx)
			return
		}
		input.Amount = &amount
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			respondInvalidDate(ctx)
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction, output.Category))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "Invalid transaction ID format")
	if !ok {
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTransactionError handles transaction errors and returns appropriate
// HTTP responses. Category errors surface here too because transaction
// operations resolve their category through the ownership guard.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeInvalidListLimit,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondInvalidDate writes the uniform bad-date response.
func respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "date must use the YYYY-MM-DD format",
		Code:  string(domainerror.ErrCodeInvalidTransactionDate),
	})
}

// respondInvalidAmount writes the uniform bad-amount response.
func respondInvalidAmount(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "amount must be a valid decimal number",
		Code:  string(domainerror.ErrCodeInvalidAmount),
	})
}
