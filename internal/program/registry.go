// Package program evaluates every NYC zoning program and special
// circumstance against a lot. Programs are registered once into a
// Registry; CheckAll runs each check and never lets one program's
// failure abort the rest.
package program

import (
	"fmt"
	"log"
	"math"

	"zoning-feasibility/internal/model"
)

// CheckFunc evaluates one program against a lot.
type CheckFunc func(lot model.LotProfile) (model.ProgramResult, error)

// Definition describes one registered zoning program.
type Definition struct {
	Key         string
	Name        string
	Category    string
	Description string
	Citation    string
	Check       CheckFunc
}

// Registry holds the ordered set of program definitions.
type Registry struct {
	defs  []Definition
	byKey map[string]Definition
}

// NewRegistry builds a registry populated with every known program.
func NewRegistry() *Registry {
	r := &Registry{byKey: map[string]Definition{}}
	registerAll(r)
	return r
}

// Register appends a program definition. Re-registering a key replaces
// the earlier definition in place.
func (r *Registry) Register(def Definition) {
	if _, exists := r.byKey[def.Key]; exists {
		for i := range r.defs {
			if r.defs[i].Key == def.Key {
				r.defs[i] = def
				break
			}
		}
	} else {
		r.defs = append(r.defs, def)
	}
	r.byKey[def.Key] = def
}

// Definitions returns the registered programs in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Get looks up a program by key.
func (r *Registry) Get(key string) (Definition, bool) {
	d, ok := r.byKey[key]
	return d, ok
}

// CheckAll runs every registered program against a lot. A check that
// returns an error still yields a result row with the error recorded.
func (r *Registry) CheckAll(lot model.LotProfile) []model.ProgramResult {
	results := make([]model.ProgramResult, 0, len(r.defs))
	for _, def := range r.defs {
		res, err := def.Check(lot)
		if err != nil {
			log.Printf("program %s check failed: %v", def.Key, err)
			res = model.ProgramResult{
				Key:       def.Key,
				Name:      def.Name,
				Category:  def.Category,
				Citation:  def.Citation,
				Rationale: fmt.Sprintf("Error evaluating: %v", err),
				Error:     err.Error(),
			}
		}
		if res.Key == "" {
			res.Key = def.Key
		}
		if res.Name == "" {
			res.Name = def.Name
		}
		if res.Category == "" {
			res.Category = def.Category
		}
		if res.Citation == "" {
			res.Citation = def.Citation
		}
		results = append(results, res)
	}
	return results
}

// Applicable filters CheckAll down to the programs that apply.
func (r *Registry) Applicable(lot model.LotProfile) []model.ProgramResult {
	var out []model.ProgramResult
	for _, res := range r.CheckAll(lot) {
		if res.Applicable {
			out = append(out, res)
		}
	}
	return out
}

// Summarize aggregates effects across applicable programs. FAR and
// height bonuses sum; affordability mandates do not stack, so the
// maximum percentage wins.
func Summarize(results []model.ProgramResult) model.EffectsSummary {
	var s model.EffectsSummary
	for _, r := range results {
		if !r.Applicable || r.Effect == nil {
			continue
		}
		s.TotalFARBonus += r.Effect.FARBonus
		s.TotalHeightBonusFt += r.Effect.HeightBonusFt
		if r.Effect.ParkingReductionPct > s.MaxParkingReduction {
			s.MaxParkingReduction = r.Effect.ParkingReductionPct
		}
		if r.Effect.MandatoryAffordablePct > s.MandatoryAffordable {
			s.MandatoryAffordable = r.Effect.MandatoryAffordablePct
		}
		s.UseRestrictions = append(s.UseRestrictions, r.Effect.UseRestrictions...)
		s.UseAllowances = append(s.UseAllowances, r.Effect.UseAllowances...)
	}
	for _, r := range results {
		if r.Applicable {
			s.ApplicableKeys = append(s.ApplicableKeys, r.Key)
		}
	}
	s.TotalFARBonus = math.Round(s.TotalFARBonus*100) / 100
	return s
}
