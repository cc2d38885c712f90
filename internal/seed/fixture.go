// Package seed carries the static fixture content the site launches with.
// The JSON is loaded verbatim; nothing here is computed.
package seed

import (
	_ "embed"
	"encoding/json"
)

//go:embed fixture.json
var fixtureJSON []byte

type Fixture struct {
	Hero           map[string]any   `json:"hero"`
	About          map[string]any   `json:"about"`
	Projects       []Project        `json:"projects"`
	Experience     []Experience     `json:"experience"`
	Skills         map[string]any   `json:"skills"`
	Certifications []map[string]any `json:"certifications"`
	Education      []map[string]any `json:"education"`
	Contact        map[string]any   `json:"contact"`
}

type Project struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	Problem      string            `json:"problem"`
	Role         string            `json:"role"`
	Approach     []string          `json:"approach"`
	Outcomes     []string          `json:"outcomes"`
	Artifacts    []string          `json:"artifacts"`
	Tags         []string          `json:"tags"`
	Image        string            `json:"image"`
	Metrics      map[string]string `json:"metrics"`
	Featured     bool              `json:"featured"`
	DisplayOrder int               `json:"display_order"`
}

type Experience struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
	Tags         []string `json:"tags"`
}

func Load() (Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(fixtureJSON, &f); err != nil {
		return Fixture{}, err
	}
	return f, nil
}
