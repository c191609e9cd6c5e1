package timeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Component is a closed, symbolic sub-service name within a contract.
type Component string

const (
	ComponentEnergySupply         Component = "energy_supply"
	ComponentBatteryOptimization  Component = "battery_optimization"
	ComponentHeatpumpOptimization Component = "heatpump_optimization"
)

// Polarity marks whether an event opens or closes a component window.
type Polarity string

const (
	PolarityStart Polarity = "start"
	PolarityEnd   Polarity = "end"
)

const (
	startSuffix = "_start"
	endSuffix   = "_end"
)

// CatalogEntry binds an event-type prefix to the component it addresses.
// The prefix is not required to equal the component name (the original
// energy product uses "supply_energy_*" events for the "energy_supply"
// component).
type CatalogEntry struct {
	Component Component `yaml:"name"`
	Prefix    string    `yaml:"event_prefix"`
}

// Catalog is the immutable event-type configuration: an ordered prefix
// table plus an independent component allow-list. It is built once at
// startup and passed by reference into the parser and validator.
type Catalog struct {
	entries    []CatalogEntry
	allowed    map[Component]struct{}
	validTypes map[string]struct{}
}

func NewCatalog(entries []CatalogEntry, allowed []Component) *Catalog {
	c := &Catalog{
		entries:    append([]CatalogEntry(nil), entries...),
		allowed:    make(map[Component]struct{}, len(allowed)),
		validTypes: make(map[string]struct{}, 2*len(entries)),
	}
	for _, comp := range allowed {
		c.allowed[comp] = struct{}{}
	}
	for _, e := range entries {
		c.validTypes[e.Prefix+startSuffix] = struct{}{}
		c.validTypes[e.Prefix+endSuffix] = struct{}{}
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]CatalogEntry{
			{Component: ComponentEnergySupply, Prefix: "supply_energy"},
			{Component: ComponentBatteryOptimization, Prefix: "battery_optimization"},
			{Component: ComponentHeatpumpOptimization, Prefix: "heatpump_optimization"},
		},
		[]Component{
			ComponentEnergySupply,
			ComponentBatteryOptimization,
			ComponentHeatpumpOptimization,
		},
	)
}

type catalogFile struct {
	Components        []CatalogEntry `yaml:"components"`
	AllowedComponents []Component    `yaml:"allowed_components"`
}

// LoadCatalog reads a catalog from a YAML file. When the file omits
// allowed_components, every declared component is allowed.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Components) == 0 {
		return nil, fmt.Errorf("catalog %s declares no components", path)
	}
	for i, e := range f.Components {
		if e.Component == "" || e.Prefix == "" {
			return nil, fmt.Errorf("catalog %s: entry %d missing name or event_prefix", path, i)
		}
	}
	allowed := f.AllowedComponents
	if len(allowed) == 0 {
		for _, e := range f.Components {
			allowed = append(allowed, e.Component)
		}
	}
	return NewCatalog(f.Components, allowed), nil
}

// ValidEventType reports whether t is one of the polarity-qualified event
// types the catalog knows, by exact match.
func (c *Catalog) ValidEventType(t string) bool {
	_, ok := c.validTypes[t]
	return ok
}

// ParseEventType resolves an event-type string to its component and
// polarity. Prefixes are tried in catalog order, first match wins; the
// resolved component must additionally be on the allow-list.
func (c *Catalog) ParseEventType(t string) (Component, Polarity, bool) {
	for _, e := range c.entries {
		if !strings.HasPrefix(t, e.Prefix) {
			continue
		}
		if _, ok := c.allowed[e.Component]; !ok {
			return "", "", false
		}
		switch {
		case strings.HasSuffix(t, startSuffix):
			return e.Component, PolarityStart, true
		case strings.HasSuffix(t, endSuffix):
			return e.Component, PolarityEnd, true
		default:
			return "", "", false
		}
	}
	return "", "", false
}
