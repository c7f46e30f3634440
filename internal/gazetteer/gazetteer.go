// Package gazetteer resolves place names from the configuration into
// coordinates and answers nearest-place queries.
package gazetteer

import (
	"strings"

	"github.com/sounny/geoaiagents/internal/config"
	"github.com/sounny/geoaiagents/internal/geo"

	"github.com/rs/zerolog/log"
)

// Place is a named location with its resolved coordinate.
type Place struct {
	Name    string
	Address string
	Coord   geo.Point
}

// Index holds validated places with a normalized name resolver. Lookups
// are read-only and safe for concurrent use.
type Index struct {
	resolver map[string]int
	places   []Place
}

// NewIndex builds the lookup index from configured places. Entries with
// out-of-range coordinates or an empty name are skipped; aliases map to
// the same place as its primary name.
func NewIndex(places []config.Place) *Index {
	idx := &Index{resolver: make(map[string]int)}

	for _, p := range places {
		if !geo.ValidLatLon(p.Lat, p.Lon) {
			log.Warn().
				Str("place", p.Name).
				Float64("lat", p.Lat).
				Float64("lon", p.Lon).
				Msg("Skipping place: coordinates out of range")
			continue
		}

		key := normalize(p.Name)
		if key == "" {
			log.Warn().Msg("Skipping place: empty name")
			continue
		}

		place := Place{Name: p.Name, Address: p.Address, Coord: geo.Point{Lat: p.Lat, Lon: p.Lon}}
		if place.Address == "" {
			place.Address = p.Name
		}

		idx.places = append(idx.places, place)
		idx.resolver[key] = len(idx.places) - 1
		for _, alias := range p.Aliases {
			if akey := normalize(alias); akey != "" {
				idx.resolver[akey] = len(idx.places) - 1
			}
		}
	}

	log.Debug().
		Int("places", len(idx.places)).
		Int("names", len(idx.resolver)).
		Msg("Gazetteer index built")

	return idx
}

// Len returns the number of indexed places.
func (x *Index) Len() int {
	return len(x.places)
}

// Resolve looks up a place by name or alias, ignoring case and
// collapsing internal whitespace.
func (x *Index) Resolve(name string) (Place, bool) {
	i, ok := x.resolver[normalize(name)]
	if !ok {
		return Place{}, false
	}

	return x.places[i], true
}

// Nearest returns the indexed place closest to the point and its
// great-circle distance in kilometres. It reports false on an empty
// index. Ties keep the earlier configured place.
func (x *Index) Nearest(p geo.Point) (Place, float64, bool) {
	if len(x.places) == 0 {
		return Place{}, 0, false
	}

	best := 0
	bestKm := geo.HaversineKm(p, x.places[0].Coord)
	for i, candidate := range x.places[1:] {
		if km := geo.HaversineKm(p, candidate.Coord); km < bestKm {
			best, bestKm = i+1, km
		}
	}

	return x.places[best], bestKm, true
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
