// Package boundaries downloads simplified political boundaries from the
// geoBoundaries API.
package boundaries

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public geoBoundaries gbOpen release endpoint.
const DefaultBaseURL = "https://www.geoboundaries.org/api/current/gbOpen"

// release is the subset of the geoBoundaries metadata document we need.
type release struct {
	BoundaryID                string `json:"boundaryID"`
	BoundaryName              string `json:"boundaryName"`
	BoundaryISO               string `json:"boundaryISO"`
	BoundaryType              string `json:"boundaryType"`
	SimplifiedGeometryGeoJSON string `json:"simplifiedGeometryGeoJSON"`
}

// Fetch downloads the simplified boundary GeoJSON for an ISO 3166-1
// alpha-3 country code and administrative level (ADM0..ADM5). It first
// requests the release metadata, then follows the simplified-geometry
// download URL it names.
func Fetch(client *http.Client, baseURL, iso, adm string) (string, error) {
	metaURL := fmt.Sprintf("%s/%s/%s/",
		strings.TrimRight(baseURL, "/"), strings.ToUpper(iso), strings.ToUpper(adm))

	resp, err := client.Get(metaURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", fmt.Errorf("decode release metadata failed: %w", err)
	}

	if rel.SimplifiedGeometryGeoJSON == "" {
		return "", fmt.Errorf("no simplified geometry in release %s %s", iso, adm)
	}

	log.Debug().
		Str("boundary", rel.BoundaryName).
		Str("url", rel.SimplifiedGeometryGeoJSON).
		Msg("Downloading boundary geometry")

	geomResp, err := client.Get(rel.SimplifiedGeometryGeoJSON)
	if err != nil {
		return "", err
	}
	defer func() { _ = geomResp.Body.Close() }()

	if geomResp.StatusCode != 200 {
		return "", fmt.Errorf("status %d", geomResp.StatusCode)
	}

	data, err := io.ReadAll(geomResp.Body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
