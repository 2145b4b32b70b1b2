package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"zoning-feasibility/internal/model"
)

// PlutoClient fetches tax-lot attributes from the NYC Open Data
// (Socrata) PLUTO dataset.
type PlutoClient struct {
	AppToken string
	BaseURL  string
	Client   *http.Client
	Cache    *Cache
}

// NewPlutoClient creates a PLUTO client. If baseURL is empty, defaults
// to the public MapPLUTO resource on data.cityofnewyork.us. The app
// token is optional; without one Socrata applies shared rate limits.
func NewPlutoClient(appToken, baseURL string) *PlutoClient {
	if baseURL == "" {
		baseURL = "https://data.cityofnewyork.us/resource/64uk-42ks.json"
	}
	return &PlutoClient{
		AppToken: appToken,
		BaseURL:  baseURL,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SocrataError represents an error response from the Socrata API.
type SocrataError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string
}

func (e *SocrataError) Error() string {
	return e.Message
}

// plutoRecord mirrors the raw Socrata row. Socrata serializes numeric
// columns as strings, so every field decodes as a string and is parsed
// afterward.
type plutoRecord struct {
	BBL       string `json:"bbl"`
	Address   string `json:"address"`
	ZoneDist1 string `json:"zonedist1"`
	ZoneDist2 string `json:"zonedist2"`
	Overlay1  string `json:"overlay1"`
	Overlay2  string `json:"overlay2"`
	SpDist1   string `json:"spdist1"`
	SpDist2   string `json:"spdist2"`
	LtdHeight string `json:"ltdheight"`
	SplitZone string `json:"splitzone"`
	LandUse   string `json:"landuse"`
	LotArea   string `json:"lotarea"`
	LotFront  string `json:"lotfront"`
	LotDepth  string `json:"lotdepth"`
	BldgArea  string `json:"bldgarea"`
	NumBldgs  string `json:"numbldgs"`
	NumFloors string `json:"numfloors"`
	AssessTot string `json:"assesstot"`
	BuiltFAR  string `json:"builtfar"`
	ResidFAR  string `json:"residfar"`
	CommFAR   string `json:"commfar"`
	FacilFAR  string `json:"facilfar"`
	YearBuilt string `json:"yearbuilt"`
	IrrLot    string `json:"irrlotcode"`
	CD        string `json:"cd"`
	ZipCode   string `json:"zipcode"`
}

// FetchLot fetches PLUTO attributes for one BBL (borough-block-lot key,
// e.g. "3012340056"). Returns nil with no error when the BBL has no
// PLUTO record.
func (c *PlutoClient) FetchLot(ctx context.Context, bbl string) (*model.PlutoData, error) {
	bbl = strings.TrimSpace(bbl)
	if bbl == "" {
		return nil, fmt.Errorf("bbl is required")
	}

	if c.Cache != nil {
		if cached, found := c.Cache.Get("pluto", bbl); found {
			if p, ok := cached.(*model.PlutoData); ok {
				log.Printf("[PLUTO] Cache hit: bbl=%s", bbl)
				return p, nil
			}
		}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("bbl", bbl)
	u.RawQuery = q.Encode()

	log.Printf("[PLUTO] Request: GET %s (bbl=%s)", u.Path, bbl)

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.AppToken != "" {
		req.Header.Set("X-App-Token", c.AppToken)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[PLUTO] Request failed: %v (duration: %v)", err, duration)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[PLUTO] Response: %d %s (duration: %v, bbl=%s)",
		resp.StatusCode, resp.Status, duration, bbl)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusForbidden:
		log.Printf("[PLUTO] Error: 403 Forbidden - Invalid app token (bbl=%s)", bbl)
		return nil, &SocrataError{
			StatusCode: resp.StatusCode,
			Code:       "INVALID_APP_TOKEN",
			Message:    "Invalid Socrata app token or insufficient permissions",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[PLUTO] Error: 429 Rate Limit Exceeded - Retry after: %s (bbl=%s)", retryAfter, bbl)
		return nil, &SocrataError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		log.Printf("[PLUTO] Error: %d %s (bbl=%s)", resp.StatusCode, resp.Status, bbl)
		return nil, &SocrataError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var records []plutoRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		log.Printf("[PLUTO] Error decoding response: %v (bbl=%s)", err, bbl)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(records) == 0 {
		log.Printf("[PLUTO] No record found (bbl=%s)", bbl)
		return nil, nil
	}

	p := parsePlutoRecord(records[0])
	log.Printf("[PLUTO] Success: bbl=%s district=%s lot_area=%.0f", p.BBL, p.ZoneDist1, p.LotArea)

	if c.Cache != nil {
		c.Cache.Set("pluto", bbl, p, TTLPluto)
	}
	return p, nil
}

func parsePlutoRecord(r plutoRecord) *model.PlutoData {
	return &model.PlutoData{
		BBL:       r.BBL,
		Address:   r.Address,
		ZoneDist1: r.ZoneDist1,
		ZoneDist2: r.ZoneDist2,
		Overlay1:  r.Overlay1,
		Overlay2:  r.Overlay2,
		SpDist1:   r.SpDist1,
		SpDist2:   r.SpDist2,
		LtdHeight: r.LtdHeight,
		SplitZone: r.SplitZone,
		LandUse:   r.LandUse,
		LotArea:   parseFloat(r.LotArea),
		LotFront:  parseFloat(r.LotFront),
		LotDepth:  parseFloat(r.LotDepth),
		BldgArea:  parseFloat(r.BldgArea),
		NumBldgs:  parseInt(r.NumBldgs),
		NumFloors: parseFloat(r.NumFloors),
		AssessTot: parseFloat(r.AssessTot),
		BuiltFAR:  parseFloat(r.BuiltFAR),
		ResidFAR:  parseFloat(r.ResidFAR),
		CommFAR:   parseFloat(r.CommFAR),
		FacilFAR:  parseFloat(r.FacilFAR),
		YearBuilt: parseInt(r.YearBuilt),
		IrrLot:    r.IrrLot,
		CD:        parseInt(r.CD),
		ZipCode:   r.ZipCode,
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	return int(parseFloat(s))
}

// BuildLotProfile assembles a LotProfile from PLUTO attributes. The
// borough digit of the BBL keys boroughs 1-5; block and lot come from
// the middle and trailing digits.
func BuildLotProfile(p *model.PlutoData) model.LotProfile {
	if p == nil {
		return model.LotProfile{}
	}

	borough, block, lot := SplitBBL(p.BBL)

	lotType := model.LotInterior
	if strings.EqualFold(p.IrrLot, "Y") {
		lotType = model.LotIrregular
	}

	return model.LotProfile{
		BBL:              p.BBL,
		Address:          p.Address,
		Borough:          borough,
		Block:            block,
		Lot:              lot,
		Pluto:            p,
		ZoningDistricts:  nonEmpty(p.ZoneDist1, p.ZoneDist2),
		Overlays:         nonEmpty(p.Overlay1, p.Overlay2),
		SpecialDistricts: nonEmpty(p.SpDist1, p.SpDist2),
		LimitedHeight:    p.LtdHeight,
		SplitZone:        strings.EqualFold(p.SplitZone, "Y"),
		LotArea:          p.LotArea,
		LotFrontage:      p.LotFront,
		LotDepth:         p.LotDepth,
		LotType:          lotType,
		CommunityDistrict: p.CD,
	}
}

// SplitBBL decomposes a 10-digit BBL into borough, block, and lot.
// Returns zeros for malformed input.
func SplitBBL(bbl string) (borough, block, lot int) {
	bbl = strings.TrimSpace(bbl)
	if len(bbl) != 10 {
		return 0, 0, 0
	}
	borough, err := strconv.Atoi(bbl[:1])
	if err != nil {
		return 0, 0, 0
	}
	block, err = strconv.Atoi(bbl[1:6])
	if err != nil {
		return borough, 0, 0
	}
	lot, err = strconv.Atoi(bbl[6:])
	if err != nil {
		return borough, block, 0
	}
	return borough, block, lot
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
