package dashboard

import (
	"context"
	"fmt"
)

// IsAvailable reports whether the (reference, toolRef) pair can be checked
// out: it must have no in-progress record and must exist in at least one
// catalog. A store failure propagates; callers must treat it as "assume
// unavailable" and abort the selection.
func (s *Service) IsAvailable(ctx context.Context, reference, toolRef string) (bool, error) {
	out, err := s.inProgress.Exists(ctx, reference, toolRef)
	if err != nil {
		return false, fmt.Errorf("check in-progress: %w", err)
	}
	if out {
		return false, nil
	}

	exists, err := s.catalog.ToolExists(ctx, reference, toolRef)
	if err != nil {
		return false, fmt.Errorf("check catalog: %w", err)
	}
	return exists, nil
}
