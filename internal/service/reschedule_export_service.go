package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/loan-reschedule-api/internal/dto"
	"github.com/noah-isme/loan-reschedule-api/internal/models"
	appErrors "github.com/noah-isme/loan-reschedule-api/pkg/errors"
	"github.com/noah-isme/loan-reschedule-api/pkg/export"
)

// exportPageSize is the page requested per listing call; the lister may cap it lower.
const exportPageSize = 1000

var rescheduleExportHeaders = []string{
	"Request ID", "Loan ID", "Account", "Client", "Status", "From Date", "Reason", "Change Schedule",
}

type rescheduleLister interface {
	ListByStatus(ctx context.Context, query dto.RescheduleListQuery) ([]*dto.RescheduleRequestView, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// RescheduleExportService renders reschedule request listings as CSV or PDF.
type RescheduleExportService struct {
	lister    rescheduleLister
	csv       csvRenderer
	pdf       pdfRenderer
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewRescheduleExportService constructs the export service. Nil renderers fall back to the defaults.
func NewRescheduleExportService(lister rescheduleLister, validate *validator.Validate, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *RescheduleExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &RescheduleExportService{lister: lister, csv: csv, pdf: pdf, validator: validate, logger: logger, now: time.Now}
}

// Export renders the requests selected by the query command.
func (s *RescheduleExportService) Export(ctx context.Context, query dto.RescheduleExportQuery) (*dto.RescheduleExport, error) {
	query.Format = strings.ToLower(strings.TrimSpace(query.Format))
	query.Command = strings.ToLower(strings.TrimSpace(query.Command))
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export query")
	}
	command, _ := models.ParseRescheduleCommand(query.Command)

	views, err := s.listAll(ctx, command)
	if err != nil {
		return nil, err
	}
	dataset := buildRescheduleDataset(views)
	stamp := s.now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("reschedule-requests-%s-%s.%s", command, stamp, query.Format)

	var (
		body        []byte
		contentType string
	)
	switch query.Format {
	case "pdf":
		body, err = s.pdf.Render(dataset, "Loan reschedule requests ("+string(command)+")")
		contentType = "application/pdf"
	default:
		body, err = s.csv.Render(dataset)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.logger.Info("reschedule export rendered",
		zap.String("command", string(command)),
		zap.String("format", query.Format),
		zap.Int("rows", len(views)),
	)
	return &dto.RescheduleExport{Filename: filename, ContentType: contentType, Body: body}, nil
}

// listAll pages through the listing until it returns an empty page.
func (s *RescheduleExportService) listAll(ctx context.Context, command models.RescheduleCommand) ([]*dto.RescheduleRequestView, error) {
	var views []*dto.RescheduleRequestView
	for offset := 0; ; {
		page, err := s.lister.ListByStatus(ctx, dto.RescheduleListQuery{
			Command: string(command),
			Limit:   exportPageSize,
			Offset:  offset,
		})
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			return views, nil
		}
		views = append(views, page...)
		offset += len(page)
	}
}

func buildRescheduleDataset(views []*dto.RescheduleRequestView) export.Dataset {
	rows := make([]map[string]string, 0, len(views))
	for _, v := range views {
		row := map[string]string{
			"Loan ID":         strconv.FormatInt(v.LoanID(), 10),
			"Change Schedule": strconv.FormatBool(v.ChangeSchedule()),
		}
		if id := v.ID(); id != nil {
			row["Request ID"] = strconv.FormatInt(*id, 10)
		}
		if account := v.LoanAccountNumber(); account != nil {
			row["Account"] = *account
		}
		if client := v.ClientName(); client != nil {
			row["Client"] = *client
		}
		if status := v.Status(); status != nil {
			row["Status"] = status.Value
		}
		if from := v.RescheduleFromDate(); from != nil {
			row["From Date"] = from.String()
		}
		if reason := v.RescheduleReasonCode(); reason != nil {
			row["Reason"] = reason.Name
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: rescheduleExportHeaders, Rows: rows}
}
