// Package catalog holds the static per-title configuration: the tracked
// title list, platform notes, lifecycle states, season cadences, and the
// hand-curated industry release list.
//
// The catalog is process-wide immutable configuration, not derived data. It
// ships with compiled-in defaults and can be overridden from a YAML file.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Game is one tracked title's identity and scrape coordinates.
type Game struct {
	Name       string  `yaml:"name"`
	AppID      int     `yaml:"app_id"`
	Subreddit  string  `yaml:"subreddit"`
	SteamShare float64 `yaml:"steam_share"`
	Genre      string  `yaml:"genre"`
}

// Cadence is a title's expected gap between major content drops.
type Cadence struct {
	Label string `yaml:"label"` // e.g. "Season", "Content update"
	Weeks int    `yaml:"weeks"`
}

// IndustryRelease is one entry of the curated industry-wide release list.
// Unconfirmed dates are month-level estimates.
type IndustryRelease struct {
	Game      string `yaml:"game"`
	Date      string `yaml:"date"` // YYYY-MM-DD
	Type      string `yaml:"type"`
	Desc      string `yaml:"desc"`
	Confirmed bool   `yaml:"confirmed"`
}

// Catalog is the full static configuration set.
type Catalog struct {
	Games            []Game             `yaml:"games"`
	PlatformNotes    map[string]string  `yaml:"platform_notes"`
	EventAnnotations map[string]string  `yaml:"event_annotations"`
	LifecycleStates  map[string]string  `yaml:"lifecycle_states"`
	Cadences         map[string]Cadence `yaml:"cadences"`
	IndustryReleases []IndustryRelease  `yaml:"industry_releases"`
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return &Catalog{
		Games:            defaultGames,
		PlatformNotes:    defaultPlatformNotes,
		EventAnnotations: defaultEventAnnotations,
		LifecycleStates:  defaultLifecycleStates,
		Cadences:         defaultCadences,
		IndustryReleases: defaultIndustryReleases,
	}
}

// Load reads a catalog from a YAML file. Sections absent from the file fall
// back to the compiled-in defaults.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadCatalog, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCatalog, err)
	}

	def := Default()
	if len(c.Games) == 0 {
		c.Games = def.Games
	}
	if c.PlatformNotes == nil {
		c.PlatformNotes = def.PlatformNotes
	}
	if c.EventAnnotations == nil {
		c.EventAnnotations = def.EventAnnotations
	}
	if c.LifecycleStates == nil {
		c.LifecycleStates = def.LifecycleStates
	}
	if c.Cadences == nil {
		c.Cadences = def.Cadences
	}
	if c.IndustryReleases == nil {
		c.IndustryReleases = def.IndustryReleases
	}
	return &c, nil
}

// Lifecycle returns the title's lifecycle state, or "" when untracked.
func (c *Catalog) Lifecycle(name string) string {
	return c.LifecycleStates[name]
}

// PlatformNote returns the known platform-mix note for a title, or "".
func (c *Catalog) PlatformNote(name string) string {
	return c.PlatformNotes[name]
}

// Annotation returns the curated event annotation for a title, or "".
func (c *Catalog) Annotation(name string) string {
	return c.EventAnnotations[name]
}
