package maintenance

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// UpdateHistoryInput rewrites an exit-log row in place.
type UpdateHistoryInput struct {
	ID          uuid.UUID
	Reference   string
	ToolRef     string
	Location    *string
	PersonName  string
	Activity    domain.ActivityKind
	Quantity    int
	OperationAt time.Time
}

// Validate checks all fields and collects all errors.
func (i *UpdateHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Reference == "" {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "required"})
	}
	if i.ToolRef == "" {
		errs = append(errs, domain.FieldError{Field: "tool_ref", Message: "required"})
	}
	if i.PersonName == "" {
		errs = append(errs, domain.FieldError{Field: "person_name", Message: "required"})
	}
	if !i.Activity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity", Message: "must be corrective or preventive"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be non-negative"})
	}
	if i.OperationAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "operation_at", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateShimInput rewrites a cale record.
type UpdateShimInput struct {
	ID             uuid.UUID
	AmortisseurRef string
	Assise         string
	Axe            string
	ThicknessMm    int
}

// Validate checks all fields and collects all errors.
func (i *UpdateShimInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.AmortisseurRef == "" {
		errs = append(errs, domain.FieldError{Field: "amortisseur_ref", Message: "required"})
	}
	if i.Assise == "" {
		errs = append(errs, domain.FieldError{Field: "assise", Message: "required"})
	}
	if i.Axe == "" {
		errs = append(errs, domain.FieldError{Field: "axe", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCriticalInput registers a tool reference as critical.
type CreateCriticalInput struct {
	Reference    string
	ComposantRef *string
	ToolRef      string
	Location     *string
}

// Validate checks all fields and collects all errors.
func (i *CreateCriticalInput) Validate() error {
	var errs []domain.FieldError

	if i.Reference == "" {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "required"})
	}
	if i.ToolRef == "" {
		errs = append(errs, domain.FieldError{Field: "tool_ref", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
