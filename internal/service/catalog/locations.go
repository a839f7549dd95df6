package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// ensureLocationsFree checks that none of the given locations is already
// occupied by another entry of either catalog. The excluded ids keep an
// entry from colliding with itself during an update.
func (s *Service) ensureLocationsFree(ctx context.Context, locations []string, excludePatte, excludeCoupelle uuid.UUID) error {
	var errs []domain.FieldError
	for _, loc := range locations {
		pattes, err := s.catalog.PattesUsingLocation(ctx, loc, excludePatte)
		if err != nil {
			return fmt.Errorf("check location %s: %w", loc, err)
		}
		if len(pattes) > 0 {
			errs = append(errs, domain.FieldError{
				Field:   "location",
				Message: fmt.Sprintf("location %s already used by patte %s", loc, pattes[0].Reference),
			})
			continue
		}

		coupelles, err := s.catalog.CoupellesUsingLocation(ctx, loc, excludeCoupelle)
		if err != nil {
			return fmt.Errorf("check location %s: %w", loc, err)
		}
		if len(coupelles) > 0 {
			errs = append(errs, domain.FieldError{
				Field:   "location",
				Message: fmt.Sprintf("location %s already used by coupelle %s", loc, coupelles[0].AmortisseurRef),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// newLocations returns the locations present in next but absent from prev.
// Updates only validate locations the edit introduces; locations the entry
// already held stay untouched.
func newLocations(prev, next []string) []string {
	existing := make(map[string]bool, len(prev))
	for _, loc := range prev {
		existing[loc] = true
	}
	var out []string
	for _, loc := range next {
		if !existing[loc] {
			out = append(out, loc)
		}
	}
	return out
}

func pattLocations(p *domain.PatteTool) []string {
	var out []string
	for _, slot := range p.Slots {
		if slot.Location != nil && *slot.Location != "" {
			out = append(out, *slot.Location)
		}
	}
	return out
}

func coupelleLocations(c *domain.CoupelleTool) []string {
	var out []string
	for _, slot := range c.Slots {
		if slot.AssiseLocation != nil && *slot.AssiseLocation != "" {
			out = append(out, *slot.AssiseLocation)
		}
		if slot.AxeLocation != nil && *slot.AxeLocation != "" {
			out = append(out, *slot.AxeLocation)
		}
	}
	return out
}
