package dashboard

import (
	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ToggleInput holds the parameters for toggling a pending selection.
type ToggleInput struct {
	Selection domain.Selection
}

// Validate checks all fields and collects all errors.
func (i *ToggleInput) Validate() error {
	var errs []domain.FieldError

	if i.Selection.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.Selection.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be patte or coupelle"})
	}
	if i.Selection.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be non-negative"})
	}
	if i.Selection.SlotIndex != nil && (*i.Selection.SlotIndex < 1 || *i.Selection.SlotIndex > domain.MaxSlots) {
		errs = append(errs, domain.FieldError{Field: "slot_index", Message: "must be between 1 and 3"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ShimInput holds the thickness supplied for a new cale record.
type ShimInput struct {
	ThicknessMm int
}

// UpdateQuantityInput changes the quantity of an already-pending selection.
type UpdateQuantityInput struct {
	Selection domain.Selection
	Quantity  int
}

// Validate checks all fields and collects all errors.
func (i *UpdateQuantityInput) Validate() error {
	var errs []domain.FieldError

	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidateInput holds the parameters for committing the pending selection
// set as a check-out batch.
type ValidateInput struct {
	PersonName string
}

// Validate checks all fields and collects all errors.
func (i *ValidateInput) Validate() error {
	var errs []domain.FieldError

	if i.PersonName == "" {
		errs = append(errs, domain.FieldError{Field: "person_name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CheckinInput holds the parameters for confirming a check-in. The three
// preparatory steps must all be acknowledged before the movement commits.
type CheckinInput struct {
	ID        uuid.UUID
	Inspected bool
	Cleaned   bool
	Restocked bool
}

// Validate checks all fields and collects all errors.
func (i *CheckinInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Inspected {
		errs = append(errs, domain.FieldError{Field: "inspected", Message: "step must be acknowledged"})
	}
	if !i.Cleaned {
		errs = append(errs, domain.FieldError{Field: "cleaned", Message: "step must be acknowledged"})
	}
	if !i.Restocked {
		errs = append(errs, domain.FieldError{Field: "restocked", Message: "step must be acknowledged"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
