package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxSlots is the number of tool slots a catalog entry can carry.
const MaxSlots = 3

// PatteSlot is one tool slot of a patte catalog entry.
type PatteSlot struct {
	ToolRef  *string
	Location *string
}

// PatteTool is a catalog entry from outils_soudage_patte: a welded ring/leg
// component with up to three flat tool slots.
type PatteTool struct {
	ID             uuid.UUID
	PatteAnneauRef string
	Reference      string
	Slots          [MaxSlots]PatteSlot
	Commentaire    *string
	Observation    *string
	CreatedAt      time.Time
}

// SlotTuple is one concrete (tool reference, location) pair extracted from a
// catalog entry. Quantity is attached by the orchestrator during expansion.
type SlotTuple struct {
	Reference string
	ToolRef   string
	Location  *string
}

// Tuples expands every non-empty slot into a SlotTuple.
func (p *PatteTool) Tuples() []SlotTuple {
	var out []SlotTuple
	for _, slot := range p.Slots {
		if slot.ToolRef == nil || *slot.ToolRef == "" {
			continue
		}
		out = append(out, SlotTuple{Reference: p.Reference, ToolRef: *slot.ToolRef, Location: slot.Location})
	}
	return out
}

// SlotTuple returns the tuple for a single 1-based slot index, or false when
// the slot is empty.
func (p *PatteTool) SlotTuple(index int) (SlotTuple, bool) {
	if index < 1 || index > MaxSlots {
		return SlotTuple{}, false
	}
	slot := p.Slots[index-1]
	if slot.ToolRef == nil || *slot.ToolRef == "" {
		return SlotTuple{}, false
	}
	return SlotTuple{Reference: p.Reference, ToolRef: *slot.ToolRef, Location: slot.Location}, true
}

// ToolRefs lists every non-empty tool reference of the entry.
func (p *PatteTool) ToolRefs() []string {
	var refs []string
	for _, t := range p.Tuples() {
		refs = append(refs, t.ToolRef)
	}
	return refs
}

// CoupelleSlot is one slot pair of a coupelle catalog entry: an optional
// assise sub-tool and an optional axe sub-tool, each with its own location.
type CoupelleSlot struct {
	Assise         *string
	AssiseLocation *string
	Axe            *string
	AxeLocation    *string
	Remark         *string
}

// HasAssise reports whether the slot carries an assise sub-tool.
func (s CoupelleSlot) HasAssise() bool { return s.Assise != nil && *s.Assise != "" }

// HasAxe reports whether the slot carries an axe sub-tool.
func (s CoupelleSlot) HasAxe() bool { return s.Axe != nil && *s.Axe != "" }

// CoupelleTool is a catalog entry from outils_soudage_coupelle: up to three
// assise/axe slot pairs attached to an amortisseur reference.
type CoupelleTool struct {
	ID             uuid.UUID
	AmortisseurRef string
	CoupelleRef    string
	Slots          [MaxSlots]CoupelleSlot
	CreatedAt      time.Time
}

// Tuples expands every non-empty assise and axe sub-slot into a SlotTuple,
// in slot order with assise before axe.
func (c *CoupelleTool) Tuples() []SlotTuple {
	var out []SlotTuple
	for _, slot := range c.Slots {
		if slot.HasAssise() {
			out = append(out, SlotTuple{Reference: c.AmortisseurRef, ToolRef: *slot.Assise, Location: slot.AssiseLocation})
		}
		if slot.HasAxe() {
			out = append(out, SlotTuple{Reference: c.AmortisseurRef, ToolRef: *slot.Axe, Location: slot.AxeLocation})
		}
	}
	return out
}

// AssiseTuple returns the assise tuple of a 1-based slot index.
func (c *CoupelleTool) AssiseTuple(index int) (SlotTuple, bool) {
	if index < 1 || index > MaxSlots {
		return SlotTuple{}, false
	}
	slot := c.Slots[index-1]
	if !slot.HasAssise() {
		return SlotTuple{}, false
	}
	return SlotTuple{Reference: c.AmortisseurRef, ToolRef: *slot.Assise, Location: slot.AssiseLocation}, true
}

// AxeTuple returns the axe tuple of a 1-based slot index.
func (c *CoupelleTool) AxeTuple(index int) (SlotTuple, bool) {
	if index < 1 || index > MaxSlots {
		return SlotTuple{}, false
	}
	slot := c.Slots[index-1]
	if !slot.HasAxe() {
		return SlotTuple{}, false
	}
	return SlotTuple{Reference: c.AmortisseurRef, ToolRef: *slot.Axe, Location: slot.AxeLocation}, true
}

// ToolRefs lists every non-empty assise and axe reference of the entry.
func (c *CoupelleTool) ToolRefs() []string {
	var refs []string
	for _, t := range c.Tuples() {
		refs = append(refs, t.ToolRef)
	}
	return refs
}
