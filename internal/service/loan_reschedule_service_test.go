package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/loan-reschedule-api/internal/dto"
	"github.com/noah-isme/loan-reschedule-api/internal/models"
	appErrors "github.com/noah-isme/loan-reschedule-api/pkg/errors"
)

type rescheduleRepoStub struct {
	requests       map[int64]models.LoanRescheduleRequest
	variations     map[int64][]models.LoanTermVariationRow
	filter         models.LoanRescheduleFilter
	listErr        error
	variationCalls [][]int64
}

func newRescheduleRepoStub() *rescheduleRepoStub {
	return &rescheduleRepoStub{
		requests:   make(map[int64]models.LoanRescheduleRequest),
		variations: make(map[int64][]models.LoanTermVariationRow),
	}
}

func (r *rescheduleRepoStub) GetByID(ctx context.Context, id int64) (*models.LoanRescheduleRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &req, nil
}

func (r *rescheduleRepoStub) List(ctx context.Context, filter models.LoanRescheduleFilter) ([]models.LoanRescheduleRequest, error) {
	r.filter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := make([]models.LoanRescheduleRequest, 0, len(r.requests))
	for id := int64(1); id <= 100; id++ {
		req, ok := r.requests[id]
		if !ok {
			continue
		}
		if filter.LoanID != nil && req.LoanID != *filter.LoanID {
			continue
		}
		if filter.StatusID != nil && req.StatusEnum != *filter.StatusID {
			continue
		}
		result = append(result, req)
	}
	return result, nil
}

func (r *rescheduleRepoStub) ListTermVariations(ctx context.Context, requestIDs ...int64) ([]models.LoanTermVariationRow, error) {
	r.variationCalls = append(r.variationCalls, requestIDs)
	var rows []models.LoanTermVariationRow
	for _, id := range requestIDs {
		for _, row := range r.variations[id] {
			row.RequestID = id
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type codeValueStub struct {
	values []models.CodeValue
	calls  int
	err    error
}

func (c *codeValueStub) ListByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error) {
	c.calls++
	return c.values, c.err
}

type memoryCache struct {
	entries map[string][]models.CodeValue
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	values, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*[]models.CodeValue)) = values
	return nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = value.([]models.CodeValue)
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.entries = map[string][]models.CodeValue{}
	return nil
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func seedRequest(id, loanID int64, status int) models.LoanRescheduleRequest {
	return models.LoanRescheduleRequest{
		ID:                        id,
		LoanID:                    loanID,
		StatusEnum:                status,
		RescheduleFromInstallment: intPtr(3),
		RescheduleFromDate:        models.DatePtr(2024, time.January, 15),
		ReasonCodeValueID:         int64Ptr(1),
		ReasonCodeValueName:       strPtr("Client Request"),
		ReasonComment:             strPtr("Client requested change"),
		ChangeSchedule:            boolPtr(true),
		RepayEvery:                intPtr(2),
		RepaymentFrequencyType:    intPtr(models.PeriodFrequencyWeeks),
		ClientID:                  int64Ptr(2),
		ClientName:                strPtr("Jane Doe"),
		LoanAccountNumber:         strPtr("LN0001"),
		SubmittedOnDate:           models.DatePtr(2024, time.January, 10),
		SubmittedByUsername:       strPtr("mifos"),
	}
}

func newTestRescheduleService(repo *rescheduleRepoStub, codes *codeValueStub, cache *CacheService) *LoanRescheduleService {
	return NewLoanRescheduleService(repo, codes, cache, NewMetricsService(), nil, zap.NewNop(), LoanRescheduleConfig{ListLimit: 50})
}

func TestLoanRescheduleServiceGet(t *testing.T) {
	repo := newRescheduleRepoStub()
	repo.requests[10] = seedRequest(10, 5, models.RescheduleStatusPending)
	repo.variations[10] = []models.LoanTermVariationRow{{
		ID:             1,
		TermType:       models.TermVariationInterestRate,
		ApplicableDate: models.NewDate(2024, time.January, 15),
		DecimalValue:   decimal.NewNullDecimal(decimal.RequireFromString("9.75")),
	}}
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	view, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), *view.ID())
	assert.Equal(t, int64(5), view.LoanID())
	assert.True(t, view.Status().PendingApproval)
	assert.Equal(t, 3, *view.RescheduleFromInstallment())
	assert.Equal(t, "Client requested change", *view.RescheduleReasonComment())
	assert.Equal(t, "mifos", *view.Timeline().SubmittedByUsername)
	assert.False(t, view.RecalculateInterest())
	assert.True(t, view.ChangeSchedule())
	assert.Equal(t, "Weeks", view.RepaymentPeriodFrequencyType().Value)
	require.Len(t, view.LoanTermVariations(), 1)
	assert.Equal(t, "loanTermType.interestRate", view.LoanTermVariations()[0].TermType.Code)
	assert.Nil(t, view.RescheduleReasons())
}

func TestLoanRescheduleServiceGetNotFound(t *testing.T) {
	svc := newTestRescheduleService(newRescheduleRepoStub(), &codeValueStub{}, nil)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrRescheduleRequestNotFound.Code, appErrors.FromError(err).Code)

	_, err = svc.Get(context.Background(), 0)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoanRescheduleServiceListByLoan(t *testing.T) {
	repo := newRescheduleRepoStub()
	repo.requests[1] = seedRequest(1, 5, models.RescheduleStatusApproved)
	repo.requests[2] = seedRequest(2, 5, models.RescheduleStatusPending)
	repo.requests[3] = seedRequest(3, 6, models.RescheduleStatusPending)
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	views, err := svc.ListByLoan(context.Background(), dto.RescheduleListQuery{LoanID: 5, Command: "pending"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), *views[0].ID())
	assert.NotNil(t, views[0].Timeline())
	require.NotNil(t, repo.filter.StatusID)
	assert.Equal(t, models.RescheduleStatusPending, *repo.filter.StatusID)
	assert.Equal(t, 50, repo.filter.Limit)
	assert.NotNil(t, views[0].LoanTermVariations())

	_, err = svc.ListByLoan(context.Background(), dto.RescheduleListQuery{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoanRescheduleServiceListByStatusReturnsTemplates(t *testing.T) {
	repo := newRescheduleRepoStub()
	repo.requests[1] = seedRequest(1, 5, models.RescheduleStatusPending)
	repo.requests[2] = seedRequest(2, 6, models.RescheduleStatusPending)
	repo.requests[3] = seedRequest(3, 7, models.RescheduleStatusRejected)
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	views, err := svc.ListByStatus(context.Background(), dto.RescheduleListQuery{Command: "pending", LoanID: 99})
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Nil(t, repo.filter.LoanID)
	for _, view := range views {
		assert.Equal(t, "Jane Doe", *view.ClientName())
		assert.Equal(t, "LN0001", *view.LoanAccountNumber())
		assert.Nil(t, view.Timeline())
		assert.Nil(t, view.RescheduleReasonComment())
		assert.Nil(t, view.RescheduleFromInstallment())
		assert.False(t, view.RecalculateInterest())
		assert.Nil(t, view.LoanTermVariations())
	}
}

func TestLoanRescheduleServiceListRejectsUnknownCommand(t *testing.T) {
	svc := newTestRescheduleService(newRescheduleRepoStub(), &codeValueStub{}, nil)

	_, err := svc.ListByStatus(context.Background(), dto.RescheduleListQuery{Command: "archived"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoanRescheduleServiceListWrapsStoreErrors(t *testing.T) {
	repo := newRescheduleRepoStub()
	repo.listErr = errors.New("connection refused")
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	_, err := svc.ListByStatus(context.Background(), dto.RescheduleListQuery{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.Nil(t, repo.filter.StatusID)
}

func TestLoanRescheduleServiceTemplateUsesCache(t *testing.T) {
	codes := &codeValueStub{values: []models.CodeValue{{ID: 1, Name: "Client Request", Active: true}}}
	cacheRepo := &memoryCache{entries: map[string][]models.CodeValue{}}
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := newTestRescheduleService(newRescheduleRepoStub(), codes, cache)

	first, err := svc.Template(context.Background())
	require.NoError(t, err)
	second, err := svc.Template(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, codes.calls)
	assert.Equal(t, first.RescheduleReasons(), second.RescheduleReasons())
	assert.Len(t, first.RepaymentFrequencyTypeOptions(), 3)
	assert.Nil(t, first.ID())
	assert.Nil(t, first.Timeline())
	assert.Contains(t, cacheRepo.entries, "code-values:LoanRescheduleReason")
}

func TestLoanRescheduleServiceTemplateWithoutReasons(t *testing.T) {
	svc := newTestRescheduleService(newRescheduleRepoStub(), &codeValueStub{}, nil)

	view, err := svc.Template(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, view.RescheduleReasons())
	assert.Empty(t, view.RescheduleReasons())
}

func TestLoanRescheduleServiceTemplateLookupFailure(t *testing.T) {
	svc := newTestRescheduleService(newRescheduleRepoStub(), &codeValueStub{err: errors.New("boom")}, nil)

	_, err := svc.Template(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestLoanRescheduleServiceListByLoanLoadsVariationsOnce(t *testing.T) {
	repo := newRescheduleRepoStub()
	for id := int64(1); id <= 3; id++ {
		repo.requests[id] = seedRequest(id, 5, models.RescheduleStatusApproved)
	}
	repo.variations[1] = []models.LoanTermVariationRow{{ID: 11, TermType: models.TermVariationDueDate}}
	repo.variations[3] = []models.LoanTermVariationRow{
		{ID: 31, TermType: models.TermVariationInterestRate},
		{ID: 32, TermType: models.TermVariationEMIAmount},
	}
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	views, err := svc.ListByLoan(context.Background(), dto.RescheduleListQuery{LoanID: 5})
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.Len(t, repo.variationCalls, 1)
	assert.Equal(t, []int64{1, 2, 3}, repo.variationCalls[0])

	require.Len(t, views[0].LoanTermVariations(), 1)
	assert.Equal(t, int64(11), views[0].LoanTermVariations()[0].ID)
	assert.Empty(t, views[1].LoanTermVariations())
	assert.NotNil(t, views[1].LoanTermVariations())
	require.Len(t, views[2].LoanTermVariations(), 2)
	assert.Equal(t, int64(32), views[2].LoanTermVariations()[1].ID)
}

func TestLoanRescheduleServiceListByLoanWithoutRowsSkipsVariations(t *testing.T) {
	repo := newRescheduleRepoStub()
	svc := newTestRescheduleService(repo, &codeValueStub{}, nil)

	views, err := svc.ListByLoan(context.Background(), dto.RescheduleListQuery{LoanID: 9})
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Empty(t, repo.variationCalls)
}
