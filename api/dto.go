/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients

TYPES:
  Runs:
    RunDTO, StatementDTO

  Scheme:
    SchemeDTO

  Errors:
    ErrorResponse

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/warp/epf-engine/epf"
	"github.com/warp/epf-engine/store/memory"
)

// =============================================================================
// RUN TYPES
// =============================================================================

// RunDTO summarizes a stored statement run.
type RunDTO struct {
	ID         string  `json:"id"`
	CreatedAt  string  `json:"created_at"`
	SourceName string  `json:"source_name"`
	Rate       float64 `json:"rate"`
	Members    int     `json:"members"`
}

// StatementDTO is one member's annual account slip. Field names mirror
// the report captions; amounts are whole rupees.
type StatementDTO struct {
	AccountNumber       string `json:"account_number"`
	Name                string `json:"name"`
	OpeningEE           int64  `json:"ob_ee"`
	OpeningER           int64  `json:"ob_er"`
	InterestEE          int64  `json:"int_ee"`
	InterestER          int64  `json:"int_er"`
	ContributionEE      int64  `json:"cont_ee"`
	ContributionER      int64  `json:"cont_er"`
	WithdrawalEE        int64  `json:"wdl_ee"`
	WithdrawalER        int64  `json:"wdl_er"`
	ClosingEE           int64  `json:"cb_ee"`
	ClosingER           int64  `json:"cb_er"`
	OpeningPension      int64  `json:"ob_eps"`
	ContributionPension int64  `json:"cont_eps"`
	ClosingPension      int64  `json:"cb_eps"`
}

// =============================================================================
// SCHEME TYPES
// =============================================================================

// SchemeDTO describes the fixed scheme parameters clients may want to
// display alongside a report.
type SchemeDTO struct {
	EmployeeRate float64  `json:"employee_rate"`
	PensionRate  float64  `json:"pension_rate"`
	EmployerRate float64  `json:"employer_rate"`
	Months       []string `json:"months"`
	Captions     []string `json:"captions"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRunDTO(run memory.Run) RunDTO {
	return RunDTO{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		SourceName: run.SourceName,
		Rate:       run.Rate.Float64(),
		Members:    run.MemberCount(),
	}
}

func toRunDTOs(runs []memory.Run) []RunDTO {
	dtos := make([]RunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toRunDTO(run)
	}
	return dtos
}

func toStatementDTO(s epf.Statement) StatementDTO {
	return StatementDTO{
		AccountNumber:       s.AccountNumber,
		Name:                s.Name,
		OpeningEE:           s.OpeningEE,
		OpeningER:           s.OpeningER,
		InterestEE:          s.InterestEE,
		InterestER:          s.InterestER,
		ContributionEE:      s.ContributionEE,
		ContributionER:      s.ContributionER,
		WithdrawalEE:        s.WithdrawalEE,
		WithdrawalER:        s.WithdrawalER,
		ClosingEE:           s.ClosingEE,
		ClosingER:           s.ClosingER,
		OpeningPension:      s.OpeningPension,
		ContributionPension: s.ContributionPension,
		ClosingPension:      s.ClosingPension,
	}
}

func toStatementDTOs(statements []epf.Statement) []StatementDTO {
	dtos := make([]StatementDTO, len(statements))
	for i, s := range statements {
		dtos[i] = toStatementDTO(s)
	}
	return dtos
}
