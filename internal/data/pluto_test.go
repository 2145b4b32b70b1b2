package data

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"zoning-feasibility/internal/model"
)

const sampleRecord = `[{
	"bbl": "3012340056",
	"address": "1234 ATLANTIC AVENUE",
	"zonedist1": "R7A",
	"overlay1": "C2-4",
	"spdist1": "",
	"splitzone": "N",
	"lotarea": "10000",
	"lotfront": "100.5",
	"lotdepth": "100",
	"bldgarea": "12000",
	"numfloors": "4",
	"builtfar": "1.2",
	"residfar": "4.0",
	"yearbuilt": "1931",
	"irrlotcode": "N",
	"cd": "308"
}]`

func TestFetchLot(t *testing.T) {
	var gotToken, gotBBL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-App-Token")
		gotBBL = r.URL.Query().Get("bbl")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleRecord))
	}))
	defer srv.Close()

	client := NewPlutoClient("token123", srv.URL)
	p, err := client.FetchLot(context.Background(), "3012340056")
	if err != nil {
		t.Fatalf("FetchLot: %v", err)
	}
	if gotToken != "token123" {
		t.Errorf("X-App-Token = %q, want token123", gotToken)
	}
	if gotBBL != "3012340056" {
		t.Errorf("query bbl = %q", gotBBL)
	}
	// Socrata serializes numbers as strings; the client parses them.
	if p.LotArea != 10000 || p.LotFront != 100.5 {
		t.Errorf("lot area/front = %v/%v, want 10000/100.5", p.LotArea, p.LotFront)
	}
	if p.YearBuilt != 1931 || p.CD != 308 {
		t.Errorf("year/cd = %d/%d, want 1931/308", p.YearBuilt, p.CD)
	}
	if p.ZoneDist1 != "R7A" || p.Overlay1 != "C2-4" {
		t.Errorf("districts = %q/%q", p.ZoneDist1, p.Overlay1)
	}
}

func TestFetchLotNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p, err := NewPlutoClient("", srv.URL).FetchLot(context.Background(), "9999999999")
	if err != nil {
		t.Fatalf("empty result should not error, got %v", err)
	}
	if p != nil {
		t.Errorf("missing BBL should return nil record")
	}
}

func TestFetchLotErrors(t *testing.T) {
	cases := []struct {
		status   int
		wantCode string
	}{
		{http.StatusForbidden, "INVALID_APP_TOKEN"},
		{http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{http.StatusInternalServerError, "API_ERROR"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tc.status == http.StatusTooManyRequests {
				w.Header().Set("Retry-After", "30")
			}
			w.WriteHeader(tc.status)
		}))
		_, err := NewPlutoClient("", srv.URL).FetchLot(context.Background(), "3012340056")
		srv.Close()

		socErr, ok := err.(*SocrataError)
		if !ok {
			t.Fatalf("status %d: error type %T, want *SocrataError", tc.status, err)
		}
		if socErr.Code != tc.wantCode {
			t.Errorf("status %d: code = %q, want %q", tc.status, socErr.Code, tc.wantCode)
		}
		if tc.status == http.StatusTooManyRequests && socErr.RetryAfter != "30" {
			t.Errorf("RetryAfter = %q, want 30", socErr.RetryAfter)
		}
	}
}

func TestFetchLotUsesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(sampleRecord))
	}))
	defer srv.Close()

	client := NewPlutoClient("", srv.URL)
	client.Cache = NewCache()

	if _, err := client.FetchLot(context.Background(), "3012340056"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := client.FetchLot(context.Background(), "3012340056"); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1 (second served from cache)", calls)
	}
}

func TestFetchLotEmptyBBL(t *testing.T) {
	if _, err := NewPlutoClient("", "http://127.0.0.1:0").FetchLot(context.Background(), " "); err == nil {
		t.Fatal("blank BBL should error without a request")
	}
}

func TestSplitBBL(t *testing.T) {
	cases := []struct {
		in                  string
		borough, block, lot int
	}{
		{"3012340056", 3, 1234, 56},
		{"1000010001", 1, 1, 1},
		{"5079990123", 5, 7999, 123},
		{"123", 0, 0, 0},
		{"", 0, 0, 0},
		{"abcdefghij", 0, 0, 0},
	}
	for _, tc := range cases {
		b, bl, l := SplitBBL(tc.in)
		if b != tc.borough || bl != tc.block || l != tc.lot {
			t.Errorf("SplitBBL(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tc.in, b, bl, l, tc.borough, tc.block, tc.lot)
		}
	}
}

func TestBuildLotProfile(t *testing.T) {
	p := &model.PlutoData{
		BBL: "3012340056", Address: "1234 ATLANTIC AVENUE",
		ZoneDist1: "R7A", ZoneDist2: "",
		Overlay1: "C2-4",
		SpDist1:  "MX-8",
		IrrLot:   "Y", SplitZone: "N",
		LotArea: 10000, LotFront: 100, LotDepth: 100,
		CD: 308,
	}
	lot := BuildLotProfile(p)
	if lot.Borough != 3 || lot.Block != 1234 || lot.Lot != 56 {
		t.Errorf("BBL split = %d/%d/%d", lot.Borough, lot.Block, lot.Lot)
	}
	if len(lot.ZoningDistricts) != 1 || lot.ZoningDistricts[0] != "R7A" {
		t.Errorf("districts = %v", lot.ZoningDistricts)
	}
	if len(lot.Overlays) != 1 || len(lot.SpecialDistricts) != 1 {
		t.Errorf("overlays/specials = %v/%v", lot.Overlays, lot.SpecialDistricts)
	}
	if lot.LotType != model.LotIrregular {
		t.Errorf("irregular flag should set lot type, got %q", lot.LotType)
	}
	if lot.SplitZone {
		t.Errorf("split zone N should be false")
	}
	if lot.CommunityDistrict != 308 {
		t.Errorf("community district = %d", lot.CommunityDistrict)
	}
	if lot.Pluto != p {
		t.Errorf("profile should carry the source record")
	}
}

func TestBuildLotProfileNil(t *testing.T) {
	lot := BuildLotProfile(nil)
	if lot.BBL != "" || lot.Pluto != nil {
		t.Errorf("nil record should yield a zero profile")
	}
}
