package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/loan-reschedule-api/internal/dto"
	"github.com/noah-isme/loan-reschedule-api/internal/middleware"
	appErrors "github.com/noah-isme/loan-reschedule-api/pkg/errors"
	"github.com/noah-isme/loan-reschedule-api/pkg/response"
)

type loanRescheduleService interface {
	Template(ctx context.Context) (*dto.RescheduleRequestView, error)
	Get(ctx context.Context, id int64) (*dto.RescheduleRequestView, error)
	ListByLoan(ctx context.Context, query dto.RescheduleListQuery) ([]*dto.RescheduleRequestView, error)
	ListByStatus(ctx context.Context, query dto.RescheduleListQuery) ([]*dto.RescheduleRequestView, error)
}

type rescheduleExporter interface {
	Export(ctx context.Context, query dto.RescheduleExportQuery) (*dto.RescheduleExport, error)
}

// LoanRescheduleHandler exposes the loan reschedule request read endpoints.
type LoanRescheduleHandler struct {
	service  loanRescheduleService
	exporter rescheduleExporter
	logger   *zap.Logger
}

// NewLoanRescheduleHandler constructs the handler.
func NewLoanRescheduleHandler(service loanRescheduleService, exporter rescheduleExporter, logger *zap.Logger) *LoanRescheduleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanRescheduleHandler{service: service, exporter: exporter, logger: logger}
}

// Template godoc
// @Summary Reschedule request template
// @Description Lookup data for building a new reschedule request
// @Tags Reschedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rescheduleloans/template [get]
func (h *LoanRescheduleHandler) Template(c *gin.Context) {
	view, err := h.service.Template(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, middleware.ResponseMeta(c))
}

// Get godoc
// @Summary Get reschedule request detail
// @Tags Reschedule
// @Produce json
// @Param id path int true "Reschedule request ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /rescheduleloans/{id} [get]
func (h *LoanRescheduleHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"), "reschedule request id")
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, middleware.ResponseMeta(c))
}

// ListByStatus godoc
// @Summary List reschedule requests by status
// @Tags Reschedule
// @Produce json
// @Param command query string false "pending, approved, rejected or all"
// @Param limit query int false "Maximum rows"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Router /rescheduleloans [get]
func (h *LoanRescheduleHandler) ListByStatus(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	views, err := h.service.ListByStatus(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, middleware.ResponseMeta(c))
}

// ListByLoan godoc
// @Summary List reschedule requests of a loan
// @Tags Reschedule
// @Produce json
// @Param loanId path int true "Loan ID"
// @Param command query string false "pending, approved, rejected or all"
// @Param limit query int false "Maximum rows"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Router /loans/{loanId}/rescheduleloans [get]
func (h *LoanRescheduleHandler) ListByLoan(c *gin.Context) {
	loanID, err := parseID(c.Param("loanId"), "loan id")
	if err != nil {
		response.Error(c, err)
		return
	}
	query, err := parseListQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	query.LoanID = loanID
	views, err := h.service.ListByLoan(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, middleware.ResponseMeta(c))
}

// Export godoc
// @Summary Export reschedule requests
// @Tags Reschedule
// @Produce text/csv
// @Produce application/pdf
// @Param command query string false "pending, approved, rejected or all"
// @Param format query string true "csv or pdf"
// @Success 200 {file} binary
// @Router /rescheduleloans/export [get]
func (h *LoanRescheduleHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInternal, "export not configured"))
		return
	}
	result, err := h.exporter.Export(c.Request.Context(), dto.RescheduleExportQuery{
		Command: c.Query("command"),
		Format:  c.DefaultQuery("format", "csv"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	if claims := claimsFromContext(c); claims != nil {
		h.logger.Info("reschedule export downloaded",
			zap.String("user_id", claims.UserID),
			zap.String("filename", result.Filename),
		)
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

func parseID(raw, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, field+" must be a positive integer")
	}
	return id, nil
}

func parseListQuery(c *gin.Context) (dto.RescheduleListQuery, error) {
	query := dto.RescheduleListQuery{
		Command: strings.ToLower(strings.TrimSpace(c.Query("command"))),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, appErrors.Clone(appErrors.ErrValidation, "limit must be an integer")
		}
		query.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return query, appErrors.Clone(appErrors.ErrValidation, "offset must be a non-negative integer")
		}
		query.Offset = offset
	}
	return query, nil
}
