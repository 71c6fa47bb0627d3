package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/loan-reschedule-api/internal/models"
)

// CodeValueRepository reads configurable lookup values.
type CodeValueRepository struct {
	db *sqlx.DB
}

// NewCodeValueRepository constructs the repository.
func NewCodeValueRepository(db *sqlx.DB) *CodeValueRepository {
	return &CodeValueRepository{db: db}
}

// ListByCodeName returns the active values of the named code ordered by position.
func (r *CodeValueRepository) ListByCodeName(ctx context.Context, codeName string) ([]models.CodeValue, error) {
	const query = `SELECT cv.id, cv.code_value AS name, cv.code_description AS description, cv.order_position AS position,
       cv.is_active, cv.is_mandatory
	FROM m_code_value cv
	JOIN m_code c ON c.id = cv.code_id
	WHERE c.code_name = $1 AND cv.is_active = TRUE
	ORDER BY cv.order_position, cv.id`
	values := make([]models.CodeValue, 0)
	if err := r.db.SelectContext(ctx, &values, query, codeName); err != nil {
		return nil, fmt.Errorf("list code values for %s: %w", codeName, err)
	}
	return values, nil
}
