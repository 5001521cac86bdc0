// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bankflow/backend/internal/application/usecase/statement"
	domainerror "github.com/bankflow/backend/internal/domain/error"
	"github.com/bankflow/backend/internal/integration/entrypoint/dto"
)

// StatementController handles statement processing endpoints.
type StatementController struct {
	processUseCase *statement.ProcessStatementUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(processUseCase *statement.ProcessStatementUseCase) *StatementController {
	return &StatementController{
		processUseCase: processUseCase,
	}
}

// Process handles POST /statements/process requests.
func (c *StatementController) Process(ctx *gin.Context) {
	var req dto.ProcessStatementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactions),
		})
		return
	}

	input := dto.ToProcessStatementInput(req)

	output, err := c.processUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var stmtErr *domainerror.StatementError
		if errors.As(err, &stmtErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: stmtErr.Message,
				Code:  string(stmtErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process statement",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProcessStatementResponse(output))
}
