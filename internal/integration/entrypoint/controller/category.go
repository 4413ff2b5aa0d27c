// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finlog/backend/internal/application/usecase/category"
	"github.com/finlog/backend/internal/domain/entity"
	domainerror "github.com/finlog/backend/internal/domain/error"
	"github.com/finlog/backend/internal/integration/entrypoint/dto"
	"github.com/finlog/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	getUseCase    *category.GetCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	getUseCase *category.GetCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := category.ListCategoriesInput{
		UserID: userID,
	}

	if categoryType := ctx.Query("type"); categoryType != "" {
		catType := entity.CategoryType(categoryType)
		if catType != entity.CategoryTypeIncome && catType != entity.CategoryTypeExpense {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "type must be 'income' or 'expense'",
				Code:  string(domainerror.ErrCodeInvalidCategoryType),
			})
			return
		}
		input.CategoryType = &catType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryFields),
		})
		return
	}

	input := category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
		Type:   entity.CategoryType(req.Type),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Get handles GET /categories/:id requests.
func (c *CategoryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx, "Invalid category ID format")
	if !ok {
		return
	}

	input := category.GetCategoryInput{
		CategoryID: categoryID,
		UserID:     userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Update handles PUT /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx, "Invalid category ID format")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		CategoryID: categoryID,
		UserID:     userID,
		Name:       req.Name,
		Color:      req.Color,
		Icon:       req.Icon,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	categoryID, ok := parseIDParam(ctx, "Invalid category ID format")
	if !ok {
		return
	}

	input := category.DeleteCategoryInput{
		CategoryID: categoryID,
		UserID:     userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
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

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeInvalidCategoryType,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the uniform missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// parseIDParam parses the :id path parameter as a UUID, writing a 400 response
// on failure.
func parseIDParam(ctx *gin.Context, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
		})
		return uuid.Nil, false
	}
	return id, true
}
