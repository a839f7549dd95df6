package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// PatteSlotInput is one tool slot of a patte entry.
type PatteSlotInput struct {
	ToolRef  *string
	Location *string
}

// CreatePatteInput holds the parameters for creating a patte entry.
type CreatePatteInput struct {
	PatteAnneauRef string
	Reference      string
	Slots          [domain.MaxSlots]PatteSlotInput
	Commentaire    *string
	Observation    *string
}

// Validate checks all fields and collects all errors.
func (i *CreatePatteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Reference) == "" {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "required"})
	}
	if strings.TrimSpace(i.PatteAnneauRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_patte_anneau", Message: "required"})
	}
	errs = append(errs, duplicateLocationErrors(patteInputLocations(i.Slots))...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePatteInput holds the parameters for replacing a patte entry.
type UpdatePatteInput struct {
	ID             uuid.UUID
	PatteAnneauRef string
	Reference      string
	Slots          [domain.MaxSlots]PatteSlotInput
	Commentaire    *string
	Observation    *string
}

// Validate checks all fields and collects all errors.
func (i *UpdatePatteInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Reference) == "" {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "required"})
	}
	if strings.TrimSpace(i.PatteAnneauRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_patte_anneau", Message: "required"})
	}
	errs = append(errs, duplicateLocationErrors(patteInputLocations(i.Slots))...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CoupelleSlotInput is one assise/axe slot pair of a coupelle entry.
type CoupelleSlotInput struct {
	Assise         *string
	AssiseLocation *string
	Axe            *string
	AxeLocation    *string
	Remark         *string
}

// CreateCoupelleInput holds the parameters for creating a coupelle entry.
type CreateCoupelleInput struct {
	AmortisseurRef string
	CoupelleRef    string
	Slots          [domain.MaxSlots]CoupelleSlotInput
}

// Validate checks all fields and collects all errors.
func (i *CreateCoupelleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.AmortisseurRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_amortisseur", Message: "required"})
	}
	if strings.TrimSpace(i.CoupelleRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_coupelle", Message: "required"})
	}
	errs = append(errs, duplicateLocationErrors(coupelleInputLocations(i.Slots))...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCoupelleInput holds the parameters for replacing a coupelle entry.
type UpdateCoupelleInput struct {
	ID             uuid.UUID
	AmortisseurRef string
	CoupelleRef    string
	Slots          [domain.MaxSlots]CoupelleSlotInput
}

// Validate checks all fields and collects all errors.
func (i *UpdateCoupelleInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.AmortisseurRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_amortisseur", Message: "required"})
	}
	if strings.TrimSpace(i.CoupelleRef) == "" {
		errs = append(errs, domain.FieldError{Field: "reference_coupelle", Message: "required"})
	}
	errs = append(errs, duplicateLocationErrors(coupelleInputLocations(i.Slots))...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func patteInputLocations(slots [domain.MaxSlots]PatteSlotInput) []string {
	var out []string
	for _, slot := range slots {
		if loc := trimOrNil(slot.Location); loc != nil {
			out = append(out, *loc)
		}
	}
	return out
}

func coupelleInputLocations(slots [domain.MaxSlots]CoupelleSlotInput) []string {
	var out []string
	for _, slot := range slots {
		if loc := trimOrNil(slot.AssiseLocation); loc != nil {
			out = append(out, *loc)
		}
		if loc := trimOrNil(slot.AxeLocation); loc != nil {
			out = append(out, *loc)
		}
	}
	return out
}

// duplicateLocationErrors flags locations used more than once within the
// same entry.
func duplicateLocationErrors(locations []string) []domain.FieldError {
	seen := make(map[string]bool, len(locations))
	var errs []domain.FieldError
	for _, loc := range locations {
		if seen[loc] {
			errs = append(errs, domain.FieldError{
				Field:   "location",
				Message: "duplicate location " + loc + " within the entry",
			})
		}
		seen[loc] = true
	}
	return errs
}
