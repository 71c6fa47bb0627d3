package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/loan-reschedule-api/internal/models"
)

const rescheduleRequestColumns = `SELECT rr.id, rr.loan_id, rr.status_enum, rr.reschedule_from_installment, rr.reschedule_from_date,
       rr.recalculate_interest, rr.reschedule_reason_cv_id, cv.code_value AS reschedule_reason_cv_value,
       rr.reschedule_reason_comment, rr.change_schedule, rr.repay_every, rr.repayment_frequency_type,
       rr.first_date_for_semi, rr.second_date_for_semi,
       c.id AS client_id, c.display_name AS client_name, l.account_no AS loan_account_number,
       rr.submitted_on_date, sbu.username AS submitted_by_username, sbu.firstname AS submitted_by_firstname, sbu.lastname AS submitted_by_lastname,
       rr.approved_on_date, abu.username AS approved_by_username, abu.firstname AS approved_by_firstname, abu.lastname AS approved_by_lastname,
       rr.rejected_on_date, rbu.username AS rejected_by_username, rbu.firstname AS rejected_by_firstname, rbu.lastname AS rejected_by_lastname
	FROM m_loan_reschedule_request rr
	JOIN m_loan l ON l.id = rr.loan_id
	LEFT JOIN m_client c ON c.id = l.client_id
	LEFT JOIN m_code_value cv ON cv.id = rr.reschedule_reason_cv_id
	LEFT JOIN m_appuser sbu ON sbu.id = rr.submitted_by_user_id
	LEFT JOIN m_appuser abu ON abu.id = rr.approved_by_user_id
	LEFT JOIN m_appuser rbu ON rbu.id = rr.rejected_by_user_id`

// LoanRescheduleRepository reads loan reschedule requests and their term variations.
type LoanRescheduleRepository struct {
	db *sqlx.DB
}

// NewLoanRescheduleRepository constructs the repository.
func NewLoanRescheduleRepository(db *sqlx.DB) *LoanRescheduleRepository {
	return &LoanRescheduleRepository{db: db}
}

// GetByID fetches one reschedule request. It returns sql.ErrNoRows when missing.
func (r *LoanRescheduleRepository) GetByID(ctx context.Context, id int64) (*models.LoanRescheduleRequest, error) {
	query := rescheduleRequestColumns + " WHERE rr.id = $1"
	var request models.LoanRescheduleRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// List returns reschedule requests matching the filter ordered by id.
func (r *LoanRescheduleRepository) List(ctx context.Context, filter models.LoanRescheduleFilter) ([]models.LoanRescheduleRequest, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 2)
	builder.WriteString(rescheduleRequestColumns)

	conditions := make([]string, 0, 2)
	if filter.LoanID != nil {
		args = append(args, *filter.LoanID)
		conditions = append(conditions, fmt.Sprintf("rr.loan_id = $%d", len(args)))
	}
	if filter.StatusID != nil {
		args = append(args, *filter.StatusID)
		conditions = append(conditions, fmt.Sprintf("rr.status_enum = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY rr.id")

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 200
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	builder.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset))

	var requests []models.LoanRescheduleRequest
	if err := r.db.SelectContext(ctx, &requests, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list loan reschedule requests: %w", err)
	}
	return requests, nil
}

// ListTermVariations returns the term variations recorded by the given reschedule requests
// in one round trip. Rows carry their request id in RequestID.
func (r *LoanRescheduleRepository) ListTermVariations(ctx context.Context, requestIDs ...int64) ([]models.LoanTermVariationRow, error) {
	if len(requestIDs) == 0 {
		return []models.LoanTermVariationRow{}, nil
	}
	const query = `SELECT m.loan_reschedule_request_id AS request_id, tv.id, tv.term_type, tv.applicable_date,
	       tv.decimal_value, tv.date_value, tv.is_specific_to_installment
	FROM m_loan_term_variations tv
	JOIN m_loan_reschedule_request_term_variations_mapping m ON m.loan_term_variations_id = tv.id
	WHERE m.loan_reschedule_request_id = ANY($1)
	ORDER BY m.loan_reschedule_request_id, tv.applicable_date, tv.id`
	var rows []models.LoanTermVariationRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(requestIDs)); err != nil {
		return nil, fmt.Errorf("list loan term variations: %w", err)
	}
	return rows, nil
}
