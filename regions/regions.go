package regions

import "github.com/planarlib/planar/geom"

// Area is a region's footprint: one or more border polygons, minus any
// hole polygons enclosed by them.
type Area struct {
	Borders []geom.Polygon
	Holes   []geom.Polygon
}

// Contains reports whether p lies inside the area: holes veto first,
// then any containing border wins.
func (a Area) Contains(p geom.Point) bool {
	for _, hole := range a.Holes {
		if hole.ContainsPoint(p) {
			return false
		}
	}
	for _, border := range a.Borders {
		if border.ContainsPoint(p) {
			return true
		}
	}

	return false
}

// Size returns the net area: the borders' absolute areas minus the
// holes' absolute areas.
func (a Area) Size() float64 {
	var size float64
	for _, hole := range a.Holes {
		size -= hole.Area()
	}
	for _, border := range a.Borders {
		size += border.Area()
	}

	return size
}

// Region is a named area.
type Region struct {
	Name string
	Area Area
}

// Site is a named point to be classified into a region.
type Site struct {
	Name string
	At   geom.Point
}

// InferHoles scans every pair of regions and records, as holes of a
// region, all borders of other regions that lie entirely inside one of
// its own borders. Regions are mutated in place.
func InferHoles(regions []Region) {
	for i := range regions {
		for j := range regions {
			if i == j {
				continue
			}
			for _, own := range regions[i].Area.Borders {
				for _, other := range regions[j].Area.Borders {
					if own.ContainsPolygon(other) {
						regions[i].Area.Holes = append(regions[i].Area.Holes, other)
					}
				}
			}
		}
	}
}

// Classify maps every site name to the name of the region containing
// it, or to the empty string when no region claims it. The first
// containing region in slice order wins.
func Classify(sites []Site, regions []Region) map[string]string {
	out := make(map[string]string, len(sites))
	for _, s := range sites {
		out[s.Name] = ""
		for _, r := range regions {
			if r.Area.Contains(s.At) {
				out[s.Name] = r.Name
				break
			}
		}
	}

	return out
}
