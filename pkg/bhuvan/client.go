// Package bhuvan fetches Land Use Land Cover AOI statistics around a
// field's coordinates. The data is diagnostic context attached to plans;
// every failure here degrades to "no data".
package bhuvan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const lulcURL = "https://bhuvan-app1.nrsc.gov.in/api/lulc250k/curl_lulc250k.php"

type Client struct {
	token    string
	simulate bool
	httpc    *http.Client
}

func New(token string, simulate bool) *Client {
	return &Client{
		token:    token,
		simulate: simulate,
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// BoundingBoxWKT builds a WKT polygon around a point. delta is the
// half-width in degrees; 0.01 is roughly 1 km.
func BoundingBoxWKT(lat, lon, delta float64) string {
	minLon, maxLon := lon-delta, lon+delta
	minLat, maxLat := lat-delta, lat+delta
	return fmt.Sprintf("POLYGON((%g %g, %g %g, %g %g, %g %g, %g %g))",
		minLon, minLat, maxLon, minLat, maxLon, maxLat, minLon, maxLat, minLon, minLat)
}

// FetchLULCStats returns the AOI-wise land use summary for a location,
// or nil when the service is unreachable or unconfigured. In simulation
// mode it returns deterministic local data without a network call.
func (c *Client) FetchLULCStats(ctx context.Context, lat, lon float64) map[string]any {
	if c.simulate {
		return c.simulated(lat, lon)
	}
	if c.token == "" {
		return nil
	}

	form := url.Values{}
	form.Set("token", c.token)
	form.Set("polygon", BoundingBoxWKT(lat, lon, 0.01))
	form.Set("year", "2015-16")
	form.Set("option", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, lulcURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		// the endpoint sometimes wraps JSON in HTML; try the embedded object
		if s, e := extractJSONObject(string(b)); e == nil {
			if json.Unmarshal([]byte(s), &out) == nil {
				return out
			}
		}
		return nil
	}
	return out
}

// simulated mirrors the live response shape with illustrative values.
func (c *Client) simulated(lat, lon float64) map[string]any {
	return map[string]any{
		"status":  "success",
		"service": "LULC 250K AOI Wise Statistics",
		"year":    "2015-16",
		"aoi": map[string]any{
			"polygon":  BoundingBoxWKT(lat, lon, 0.01),
			"centroid": map[string]float64{"lat": lat, "lon": lon},
		},
		"summary": map[string]any{
			"total_area_sqkm": 3.12,
			"dominant_class":  "Agriculture - Crop land",
		},
		"classes": []map[string]any{
			{"code": 1, "name": "Agriculture - Crop land", "area_sqkm": 1.28, "percent": 41.0},
			{"code": 2, "name": "Fallow", "area_sqkm": 0.35, "percent": 11.2},
			{"code": 3, "name": "Forest", "area_sqkm": 0.92, "percent": 29.5},
			{"code": 4, "name": "Built-up", "area_sqkm": 0.17, "percent": 5.4},
			{"code": 5, "name": "Waterbodies", "area_sqkm": 0.11, "percent": 3.6},
			{"code": 6, "name": "Others", "area_sqkm": 0.29, "percent": 9.3},
		},
		"source": "Bhuvan_Isro",
	}
}

func extractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in response")
	}
	return s[start : end+1], nil
}
