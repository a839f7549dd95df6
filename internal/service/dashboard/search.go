package dashboard

import (
	"context"
	"fmt"
)

// SearchPattes returns catalog hits for the term with per-slot
// availability and an exit-log history marker.
func (s *Service) SearchPattes(ctx context.Context, term string) ([]PatteSearchResult, error) {
	tools, err := s.catalog.SearchPattes(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search pattes: %w", err)
	}

	out := make([]PatteSearchResult, 0, len(tools))
	for _, tool := range tools {
		res := PatteSearchResult{Tool: tool}

		for i, slot := range tool.Slots {
			if slot.ToolRef == nil {
				continue
			}
			ok, err := s.IsAvailable(ctx, tool.Reference, *slot.ToolRef)
			if err != nil {
				return nil, err
			}
			res.SlotAvailable[i] = ok
		}

		hasHist, err := s.hasHistory(ctx, tool.ToolRefs())
		if err != nil {
			return nil, err
		}
		res.HasHistory = hasHist

		out = append(out, res)
	}
	return out, nil
}

// SearchCoupelles returns catalog hits for the term with per-sub-tool
// availability and an exit-log history marker.
func (s *Service) SearchCoupelles(ctx context.Context, term string) ([]CoupelleSearchResult, error) {
	tools, err := s.catalog.SearchCoupelles(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search coupelles: %w", err)
	}

	out := make([]CoupelleSearchResult, 0, len(tools))
	for _, tool := range tools {
		res := CoupelleSearchResult{Tool: tool}

		for i, slot := range tool.Slots {
			if slot.Assise != nil {
				ok, err := s.IsAvailable(ctx, tool.AmortisseurRef, *slot.Assise)
				if err != nil {
					return nil, err
				}
				res.AssiseAvailable[i] = ok
			}
			if slot.Axe != nil {
				ok, err := s.IsAvailable(ctx, tool.AmortisseurRef, *slot.Axe)
				if err != nil {
					return nil, err
				}
				res.AxeAvailable[i] = ok
			}
		}

		hasHist, err := s.hasHistory(ctx, tool.ToolRefs())
		if err != nil {
			return nil, err
		}
		res.HasHistory = hasHist

		out = append(out, res)
	}
	return out, nil
}

func (s *Service) hasHistory(ctx context.Context, refs []string) (bool, error) {
	if len(refs) == 0 {
		return false, nil
	}
	found, err := s.history.ReferencesWithHistory(ctx, refs)
	if err != nil {
		return false, fmt.Errorf("check history: %w", err)
	}
	return len(found) > 0, nil
}
