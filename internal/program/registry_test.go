package program

import (
	"errors"
	"testing"

	"zoning-feasibility/internal/model"
)

func emptyRegistry() *Registry {
	return &Registry{byKey: map[string]Definition{}}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	r := emptyRegistry()
	r.Register(Definition{Key: "a", Name: "first"})
	r.Register(Definition{Key: "b", Name: "second"})
	r.Register(Definition{Key: "a", Name: "replacement"})

	defs := r.Definitions()
	if len(defs) != 2 {
		t.Fatalf("len(Definitions()) = %d, want 2", len(defs))
	}
	if defs[0].Key != "a" || defs[0].Name != "replacement" {
		t.Errorf("re-registered key should keep its slot: got %+v", defs[0])
	}
	if defs[1].Key != "b" {
		t.Errorf("second slot = %q, want b", defs[1].Key)
	}
	if d, ok := r.Get("a"); !ok || d.Name != "replacement" {
		t.Errorf("Get(a) = (%+v, %v), want replacement", d, ok)
	}
}

func TestCheckAllIsolatesFailures(t *testing.T) {
	r := emptyRegistry()
	r.Register(Definition{
		Key:  "ok",
		Name: "Working Program",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return model.ProgramResult{Applicable: true}, nil
		},
	})
	r.Register(Definition{
		Key:      "broken",
		Name:     "Broken Program",
		Citation: "ZR 0-00",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return model.ProgramResult{}, errors.New("boom")
		},
	})
	r.Register(Definition{
		Key:  "also_ok",
		Name: "Later Program",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return model.ProgramResult{Applicable: true}, nil
		},
	})

	results := r.CheckAll(model.LotProfile{})
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results[0].Key != "ok" || !results[0].Applicable {
		t.Errorf("first result = %+v, want applicable ok", results[0])
	}
	if results[1].Error != "boom" {
		t.Errorf("failed check error = %q, want boom", results[1].Error)
	}
	if results[1].Name != "Broken Program" || results[1].Citation != "ZR 0-00" {
		t.Errorf("failed check should carry its definition metadata: %+v", results[1])
	}
	if results[1].Applicable {
		t.Errorf("failed check must not report applicable")
	}
	if results[2].Key != "also_ok" || !results[2].Applicable {
		t.Errorf("check after a failure should still run: %+v", results[2])
	}
}

func TestCheckAllBackfillsMetadata(t *testing.T) {
	r := emptyRegistry()
	r.Register(Definition{
		Key:      "fresh",
		Name:     "FRESH Food Stores",
		Category: "incentive",
		Citation: "ZR 63-00",
		Check: func(lot model.LotProfile) (model.ProgramResult, error) {
			return model.ProgramResult{Applicable: true}, nil
		},
	})
	res := r.CheckAll(model.LotProfile{})[0]
	if res.Key != "fresh" || res.Name != "FRESH Food Stores" || res.Category != "incentive" || res.Citation != "ZR 63-00" {
		t.Errorf("metadata not backfilled: %+v", res)
	}
}

func TestApplicable(t *testing.T) {
	r := emptyRegistry()
	r.Register(Definition{Key: "yes", Check: func(model.LotProfile) (model.ProgramResult, error) {
		return model.ProgramResult{Applicable: true}, nil
	}})
	r.Register(Definition{Key: "no", Check: func(model.LotProfile) (model.ProgramResult, error) {
		return model.ProgramResult{Applicable: false, Eligible: true}, nil
	}})

	got := r.Applicable(model.LotProfile{})
	if len(got) != 1 || got[0].Key != "yes" {
		t.Errorf("Applicable() = %+v, want the single applicable program", got)
	}
}

func TestSummarize(t *testing.T) {
	results := []model.ProgramResult{
		{
			Key:        "mih",
			Applicable: true,
			Effect: &model.ProgramEffect{
				FARBonus:               0.55,
				MandatoryAffordablePct: 25,
			},
		},
		{
			Key:        "fresh",
			Applicable: true,
			Effect: &model.ProgramEffect{
				FARBonus:      1.0,
				UseAllowances: []string{"grocery store"},
			},
		},
		{
			Key:        "other_affordable",
			Applicable: true,
			Effect: &model.ProgramEffect{
				MandatoryAffordablePct: 20,
				ParkingReductionPct:    50,
			},
		},
		{
			Key:        "skipped",
			Applicable: false,
			Effect:     &model.ProgramEffect{FARBonus: 99},
		},
	}

	s := Summarize(results)
	if s.TotalFARBonus != 1.55 {
		t.Errorf("TotalFARBonus = %v, want 1.55 (bonuses sum)", s.TotalFARBonus)
	}
	if s.MandatoryAffordable != 25 {
		t.Errorf("MandatoryAffordable = %v, want 25 (max, not sum)", s.MandatoryAffordable)
	}
	if s.MaxParkingReduction != 50 {
		t.Errorf("MaxParkingReduction = %v, want 50", s.MaxParkingReduction)
	}
	if len(s.UseAllowances) != 1 || s.UseAllowances[0] != "grocery store" {
		t.Errorf("UseAllowances = %v", s.UseAllowances)
	}
	if len(s.ApplicableKeys) != 3 {
		t.Errorf("ApplicableKeys = %v, want the three applicable keys", s.ApplicableKeys)
	}
}
