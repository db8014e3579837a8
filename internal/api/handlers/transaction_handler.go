package handlers

import (
	"errors"

	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/dto"
	"github.com/o-Erebus/Financial-Analytics-Dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Filtered, sorted and paginated transaction listing
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param sortBy query string false "Sort key (default date)"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Param search query string false "Full-text search terms"
// @Param category query string false "Revenue or Expense"
// @Param status query string false "Paid or Pending"
// @Param user_id query string false "Owner user id"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Param minAmount query number false "Lower amount bound"
// @Param maxAmount query number false "Upper amount bound"
// @Security Bearer
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	var q dto.TransactionQuery
	if err := c.QueryParser(&q); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	resp, err := h.txService.ListTransactions(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err, "Failed to fetch transactions")
	}

	return c.JSON(resp)
}

// ExportTransactions godoc
// @Summary Export transactions
// @Description Every transaction matching the listing filters, unpaginated, as CSV or XLSX
// @Tags transactions
// @Produce text/csv
// @Param fields query string false "Comma-separated column names"
// @Param format query string false "csv (default) or xlsx"
// @Param sortBy query string false "Sort key (default date)"
// @Param sortOrder query string false "asc or desc (default desc)"
// @Param search query string false "Full-text search terms"
// @Param category query string false "Revenue or Expense"
// @Param status query string false "Paid or Pending"
// @Param user_id query string false "Owner user id"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Security Bearer
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/export [get]
func (h *TransactionHandler) ExportTransactions(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q.TransactionQuery); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	q.Fields = c.Query("fields")
	q.Format = c.Query("format")
	if err := validate.Struct(&q); err != nil {
		return validationError(c, err)
	}

	file, err := h.txService.ExportTransactions(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err, "Failed to export transactions")
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+file.FileName)
	return c.Send(file.Body)
}

// GetStats godoc
// @Summary Transaction statistics
// @Description Revenue, expenses, net profit, category breakdown and monthly trend over paid transactions
// @Tags transactions
// @Produce json
// @Param user_id query string false "Owner user id"
// @Param startDate query string false "YYYY-MM-DD, inclusive"
// @Param endDate query string false "YYYY-MM-DD, inclusive"
// @Security Bearer
// @Success 200 {object} dto.StatsResponse
// @Failure 400 {object} map[string]string
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetStats(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := c.QueryParser(&q); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	resp, err := h.txService.GetStats(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err, "Failed to fetch stats")
	}

	return c.JSON(resp)
}

func (h *TransactionHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrInvalidFilter):
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoTransactionsToExport):
		return errorResponse(c, fiber.StatusNotFound, err.Error())
	}
	h.logger.Error(message, zap.Error(err), zap.String("path", c.Path()))
	return errorResponse(c, fiber.StatusInternalServerError, message)
}
