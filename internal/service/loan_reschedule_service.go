package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/loan-reschedule-api/internal/dto"
	"github.com/noah-isme/loan-reschedule-api/internal/models"
	appErrors "github.com/noah-isme/loan-reschedule-api/pkg/errors"
)

const (
	viewShapeDetail   = "detail"
	viewShapeTemplate = "template"

	defaultReasonCodeName = "LoanRescheduleReason"
)

type rescheduleStore interface {
	GetByID(ctx context.Context, id int64) (*models.LoanRescheduleRequest, error)
	List(ctx context.Context, filter models.LoanRescheduleFilter) ([]models.LoanRescheduleRequest, error)
	ListTermVariations(ctx context.Context, requestIDs ...int64) ([]models.LoanTermVariationRow, error)
}

type codeValueStore interface {
	ListByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error)
}

// LoanRescheduleConfig tunes the service.
type LoanRescheduleConfig struct {
	ReasonCodeName string
	CacheTTL       time.Duration
	ListLimit      int
}

// LoanRescheduleService assembles reschedule request views from persisted rows and lookup tables.
type LoanRescheduleService struct {
	repo      rescheduleStore
	codes     codeValueStore
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       LoanRescheduleConfig
}

// NewLoanRescheduleService constructs the service. cache, metrics, validate and logger may be nil.
func NewLoanRescheduleService(repo rescheduleStore, codes codeValueStore, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg LoanRescheduleConfig) *LoanRescheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReasonCodeName == "" {
		cfg.ReasonCodeName = defaultReasonCodeName
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 200
	}
	return &LoanRescheduleService{
		repo:      repo,
		codes:     codes,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// Template returns the lookup data needed to build a new reschedule request form.
func (s *LoanRescheduleService) Template(ctx context.Context) (*dto.RescheduleRequestView, error) {
	reasons, err := s.rescheduleReasons(ctx)
	if err != nil {
		return nil, err
	}
	view := dto.NewRescheduleRequestDetail(dto.RescheduleRequestDetailParams{
		RescheduleReasons:             reasons,
		RepaymentFrequencyTypeOptions: models.RepaymentFrequencyTypeOptions(),
	})
	s.metrics.CountViews(viewShapeDetail, 1)
	return view, nil
}

// Get returns the detail view of one reschedule request.
func (s *LoanRescheduleService) Get(ctx context.Context, id int64) (*dto.RescheduleRequestView, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "reschedule request id must be positive")
	}
	start := time.Now()
	row, err := s.repo.GetByID(ctx, id)
	s.metrics.ObserveDBQuery("reschedule_request_get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrRescheduleRequestNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reschedule request")
	}
	variations, err := s.termVariations(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	s.metrics.CountViews(viewShapeDetail, 1)
	return detailView(row, variations[row.ID]), nil
}

// ListByLoan returns detail views of the reschedule requests raised against one loan.
func (s *LoanRescheduleService) ListByLoan(ctx context.Context, query dto.RescheduleListQuery) ([]*dto.RescheduleRequestView, error) {
	if query.LoanID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "loan id is required")
	}
	filter, err := s.filterFor(query)
	if err != nil {
		return nil, err
	}
	rows, err := s.list(ctx, "reschedule_request_list_by_loan", filter)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(rows))
	for i := range rows {
		ids[i] = rows[i].ID
	}
	variations, err := s.termVariations(ctx, ids...)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.RescheduleRequestView, 0, len(rows))
	for i := range rows {
		views = append(views, detailView(&rows[i], variations[rows[i].ID]))
	}
	s.metrics.CountViews(viewShapeDetail, len(views))
	return views, nil
}

// ListByStatus returns template views across loans for the given status command.
func (s *LoanRescheduleService) ListByStatus(ctx context.Context, query dto.RescheduleListQuery) ([]*dto.RescheduleRequestView, error) {
	query.LoanID = 0
	filter, err := s.filterFor(query)
	if err != nil {
		return nil, err
	}
	rows, err := s.list(ctx, "reschedule_request_list_by_status", filter)
	if err != nil {
		return nil, err
	}
	views := make([]*dto.RescheduleRequestView, 0, len(rows))
	for i := range rows {
		views = append(views, templateView(&rows[i]))
	}
	s.metrics.CountViews(viewShapeTemplate, len(views))
	return views, nil
}

func (s *LoanRescheduleService) filterFor(query dto.RescheduleListQuery) (models.LoanRescheduleFilter, error) {
	if err := s.validator.Struct(query); err != nil {
		return models.LoanRescheduleFilter{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reschedule request query")
	}
	command, ok := models.ParseRescheduleCommand(query.Command)
	if !ok {
		return models.LoanRescheduleFilter{}, appErrors.Clone(appErrors.ErrValidation, "unsupported command: "+query.Command)
	}
	filter := models.LoanRescheduleFilter{
		StatusID: command.StatusID(),
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.ListLimit {
		filter.Limit = s.cfg.ListLimit
	}
	if query.LoanID > 0 {
		loanID := query.LoanID
		filter.LoanID = &loanID
	}
	return filter, nil
}

func (s *LoanRescheduleService) list(ctx context.Context, label string, filter models.LoanRescheduleFilter) ([]models.LoanRescheduleRequest, error) {
	start := time.Now()
	rows, err := s.repo.List(ctx, filter)
	s.metrics.ObserveDBQuery(label, time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reschedule requests")
	}
	return rows, nil
}

// termVariations loads the variations of every request in one query, keyed by request id.
func (s *LoanRescheduleService) termVariations(ctx context.Context, requestIDs ...int64) (map[int64][]models.LoanTermVariation, error) {
	byRequest := make(map[int64][]models.LoanTermVariation, len(requestIDs))
	if len(requestIDs) == 0 {
		return byRequest, nil
	}
	start := time.Now()
	rows, err := s.repo.ListTermVariations(ctx, requestIDs...)
	s.metrics.ObserveDBQuery("loan_term_variations_list", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load loan term variations")
	}
	for _, vr := range rows {
		byRequest[vr.RequestID] = append(byRequest[vr.RequestID], vr.Variation())
	}
	return byRequest, nil
}

func detailView(row *models.LoanRescheduleRequest, variations []models.LoanTermVariation) *dto.RescheduleRequestView {
	if variations == nil {
		variations = []models.LoanTermVariation{}
	}
	id := row.ID
	status := row.Status()
	return dto.NewRescheduleRequestDetail(dto.RescheduleRequestDetailParams{
		ID:                           &id,
		LoanID:                       row.LoanID,
		Status:                       &status,
		RescheduleFromInstallment:    row.RescheduleFromInstallment,
		RescheduleFromDate:           row.RescheduleFromDate,
		RescheduleReasonCode:         row.ReasonCode(),
		RescheduleReasonComment:      row.ReasonComment,
		Timeline:                     row.Timeline(),
		ClientName:                   row.ClientName,
		LoanAccountNumber:            row.LoanAccountNumber,
		ClientID:                     row.ClientID,
		RecalculateInterest:          row.RecalculateInterest,
		ChangeSchedule:               row.ScheduleChanged(),
		RepayEvery:                   row.RepayEvery,
		RepaymentPeriodFrequencyType: row.FrequencyType(),
		FirstDateForSemi:             row.FirstDateForSemi,
		SecondDateForSemi:            row.SecondDateForSemi,
		LoanTermVariations:           variations,
	})
}

func templateView(row *models.LoanRescheduleRequest) *dto.RescheduleRequestView {
	id := row.ID
	status := row.Status()
	return dto.NewRescheduleRequestTemplate(dto.RescheduleRequestTemplateParams{
		ID:                           &id,
		LoanID:                       row.LoanID,
		Status:                       &status,
		ClientName:                   row.ClientName,
		LoanAccountNumber:            row.LoanAccountNumber,
		ClientID:                     row.ClientID,
		RescheduleFromDate:           row.RescheduleFromDate,
		RescheduleReasonCode:         row.ReasonCode(),
		ChangeSchedule:               row.ScheduleChanged(),
		RepayEvery:                   row.RepayEvery,
		RepaymentPeriodFrequencyType: row.FrequencyType(),
		FirstDateForSemi:             row.FirstDateForSemi,
		SecondDateForSemi:            row.SecondDateForSemi,
	})
}

func (s *LoanRescheduleService) rescheduleReasons(ctx context.Context) ([]models.CodeValue, error) {
	key := "code-values:" + s.cfg.ReasonCodeName
	var cached []models.CodeValue
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	start := time.Now()
	reasons, err := s.codes.ListByCodeName(ctx, s.cfg.ReasonCodeName)
	s.metrics.ObserveDBQuery("code_values_by_name", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reschedule reasons")
	}
	if reasons == nil {
		reasons = []models.CodeValue{}
	}
	if err := s.cache.Set(ctx, key, reasons, s.cfg.CacheTTL); err != nil {
		s.logger.Debug("reschedule reasons not cached", zap.Error(err))
	}
	return reasons, nil
}
