// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finlog/backend/internal/application/usecase/analytics"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/entrypoint/dto"
	"github.com/finlog/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	summaryUseCase  *analytics.GetSummaryUseCase
	spendingUseCase *analytics.GetSpendingByCategoryUseCase
	trendsUseCase   *analytics.GetMonthlyTrendsUseCase
	recentUseCase   *analytics.GetRecentTransactionsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	spendingUseCase *analytics.GetSpendingByCategoryUseCase,
	trendsUseCase *analytics.GetMonthlyTrendsUseCase,
	recentUseCase *analytics.GetRecentTransactionsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase:  summaryUseCase,
		spendingUseCase: spendingUseCase,
		trendsUseCase:   trendsUseCase,
		recentUseCase:   recentUseCase,
	}
}

// GetSummary handles GET /analytics/summary requests.
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetSummaryInput{
		UserID: userID,
	}

	startDate, endDate, ok := parseDateRangeQuery(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetSpendingByCategory handles GET /analytics/spending-by-category requests.
func (c *AnalyticsController) GetSpendingByCategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetSpendingByCategoryInput{
		UserID: userID,
	}

	startDate, endDate, ok := parseDateRangeQuery(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.spendingUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingByCategoryResponse(output))
}

// GetMonthlyTrends handles GET /analytics/monthly-trends requests.
func (c *AnalyticsController) GetMonthlyTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	yearStr := ctx.Query("year")
	if yearStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year is required",
			Code:  string(domainerror.ErrCodeMissingYear),
		})
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be an integer",
			Code:  string(domainerror.ErrCodeMissingYear),
		})
		return
	}

	input := analytics.GetMonthlyTrendsInput{
		UserID: userID,
		Year:   year,
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTrendsResponse(output))
}

// GetRecentTransactions handles GET /analytics/recent-transactions requests.
func (c *AnalyticsController) GetRecentTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := analytics.GetRecentTransactionsInput{
		UserID: userID,
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be an integer",
				Code:  string(domainerror.ErrCodeInvalidRecentLimit),
			})
			return
		}
		input.Limit = &limit
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output.Transactions))
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var anlErr *domainerror.AnalyticsError
	if errors.As(err, &anlErr) {
		statusCode := c.getStatusCodeForAnalyticsError(anlErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: anlErr.Message,
			Code:  string(anlErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAnalyticsError maps analytics error codes to HTTP status codes.
func (c *AnalyticsController) getStatusCodeForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeMissingYear,
		domainerror.ErrCodeInvalidRecentLimit:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateRangeQuery parses the optional start_date/end_date query
// parameters, writing a 400 response on malformed input.
func parseDateRangeQuery(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var startDate, endDate *time.Time

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		parsed, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			respondInvalidAnalyticsDate(ctx)
			return nil, nil, false
		}
		startDate = &parsed
	}

	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		parsed, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			respondInvalidAnalyticsDate(ctx)
			return nil, nil, false
		}
		endDate = &parsed
	}

	return startDate, endDate, true
}

// respondInvalidAnalyticsDate writes the uniform bad-date response for
// analytics query parameters.
func respondInvalidAnalyticsDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "date must use the YYYY-MM-DD format",
		Code:  string(domainerror.ErrCodeInvalidDateFormat),
	})
}
