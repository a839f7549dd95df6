package dashboard

import (
	"context"
	"fmt"
)

// thresholdEvaluation is the result of a maintenance-ceiling check.
type thresholdEvaluation struct {
	exceeds      bool
	currentTotal int
}

// evaluateThreshold reads the most recent exit-log quantity for the pair
// and decides whether the requested quantity would cross the ceiling. The
// last log row's quantity is treated as the running cumulative total, not
// summed over all rows.
func (s *Service) evaluateThreshold(ctx context.Context, reference, toolRef string, requested int) (thresholdEvaluation, error) {
	last, err := s.history.LastQuantity(ctx, reference, toolRef)
	if err != nil {
		return thresholdEvaluation{}, fmt.Errorf("last exit quantity: %w", err)
	}

	return thresholdEvaluation{
		exceeds:      last+requested > s.cfg.ThresholdCeiling,
		currentTotal: last,
	}, nil
}
