// Package locations provides the static registry of known physical sites.
// The registry is the only source of location reference data; sites are
// compiled in and never persisted.
package locations

import (
	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/core/ports"
)

// site is a registry row before it is turned into a Location value.
type site struct {
	identifier            string
	maxNumberOfWarehouses int
	maxCapacity           int
}

var knownSites = []site{
	{"ZWOLLE-001", 1, 40},
	{"ZWOLLE-002", 2, 50},
	{"AMSTERDAM-001", 5, 100},
	{"AMSTERDAM-002", 2, 75},
	{"TILBURG-001", 1, 40},
	{"HELMOND-001", 1, 45},
	{"EINDHOVEN-001", 2, 70},
	{"VETSBY-001", 1, 90},
}

// Registry resolves location identifiers against the compiled-in site list.
type Registry struct {
	sites map[string]location.Location
}

// NewRegistry creates the registry of known sites.
func NewRegistry() (*Registry, error) {
	sites := make(map[string]location.Location, len(knownSites))
	for _, s := range knownSites {
		loc, err := location.NewLocation(s.identifier, s.maxNumberOfWarehouses, s.maxCapacity)
		if err != nil {
			return nil, err
		}
		sites[s.identifier] = loc
	}

	return &Registry{sites: sites}, nil
}

// Resolve looks up a location by its identifier. Matching is case-sensitive;
// unknown and empty identifiers are reported as absent.
func (r *Registry) Resolve(identifier string) (location.Location, bool) {
	loc, ok := r.sites[identifier]
	return loc, ok
}

var _ ports.LocationResolver = (*Registry)(nil)
