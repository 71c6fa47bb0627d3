package models

import "github.com/shopspring/decimal"

// Term variation types applied by a reschedule request.
const (
	TermVariationEMIAmount                  = 1
	TermVariationInterestRate               = 2
	TermVariationPrincipalAmount            = 3
	TermVariationDueDate                    = 4
	TermVariationInsertInstallment          = 5
	TermVariationDeleteInstallment          = 6
	TermVariationGraceOnInterest            = 7
	TermVariationGraceOnPrincipal           = 8
	TermVariationExtendRepaymentPeriod      = 9
	TermVariationInterestRateForInstallment = 10
)

var termVariationTypes = map[int]EnumOption{
	TermVariationEMIAmount:                  {ID: TermVariationEMIAmount, Code: "loanTermType.emiAmount", Value: "emiAmount"},
	TermVariationInterestRate:               {ID: TermVariationInterestRate, Code: "loanTermType.interestRate", Value: "interestRate"},
	TermVariationPrincipalAmount:            {ID: TermVariationPrincipalAmount, Code: "loanTermType.principalAmount", Value: "principalAmount"},
	TermVariationDueDate:                    {ID: TermVariationDueDate, Code: "loanTermType.dueDate", Value: "dueDate"},
	TermVariationInsertInstallment:          {ID: TermVariationInsertInstallment, Code: "loanTermType.insertInstallment", Value: "insertInstallment"},
	TermVariationDeleteInstallment:          {ID: TermVariationDeleteInstallment, Code: "loanTermType.deleteInstallment", Value: "deleteInstallment"},
	TermVariationGraceOnInterest:            {ID: TermVariationGraceOnInterest, Code: "loanTermType.graceOnInterest", Value: "graceOnInterest"},
	TermVariationGraceOnPrincipal:           {ID: TermVariationGraceOnPrincipal, Code: "loanTermType.graceOnPrincipal", Value: "graceOnPrincipal"},
	TermVariationExtendRepaymentPeriod:      {ID: TermVariationExtendRepaymentPeriod, Code: "loanTermType.extendRepaymentPeriod", Value: "extendRepaymentPeriod"},
	TermVariationInterestRateForInstallment: {ID: TermVariationInterestRateForInstallment, Code: "loanTermType.interestRateForInstallment", Value: "interestRateForInstallment"},
}

// TermVariationTypeFromID resolves a term variation type identifier.
func TermVariationTypeFromID(id int) EnumOption {
	if option, ok := termVariationTypes[id]; ok {
		return option
	}
	return EnumOption{ID: 0, Code: "loanTermType.invalid", Value: "invalid"}
}

// LoanTermVariation describes one change to a loan's terms recorded by a reschedule request.
type LoanTermVariation struct {
	ID                          int64               `json:"id"`
	TermType                    EnumOption          `json:"termType"`
	TermVariationApplicableFrom Date                `json:"termVariationApplicableFrom"`
	DecimalValue                decimal.NullDecimal `json:"decimalValue"`
	DateValue                   *Date               `json:"dateValue,omitempty"`
	IsSpecificToInstallment     bool                `json:"isSpecificToInstallment"`
}

// LoanTermVariationRow is the persisted shape of m_loan_term_variations.
type LoanTermVariationRow struct {
	RequestID               int64               `db:"request_id"`
	ID                      int64               `db:"id"`
	TermType                int                 `db:"term_type"`
	ApplicableDate          Date                `db:"applicable_date"`
	DecimalValue            decimal.NullDecimal `db:"decimal_value"`
	DateValue               *Date               `db:"date_value"`
	IsSpecificToInstallment bool                `db:"is_specific_to_installment"`
}

// Variation converts the row into its read representation.
func (r LoanTermVariationRow) Variation() LoanTermVariation {
	return LoanTermVariation{
		ID:                          r.ID,
		TermType:                    TermVariationTypeFromID(r.TermType),
		TermVariationApplicableFrom: r.ApplicableDate,
		DecimalValue:                r.DecimalValue,
		DateValue:                   r.DateValue,
		IsSpecificToInstallment:     r.IsSpecificToInstallment,
	}
}
