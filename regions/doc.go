// Package regions classifies points into named polygonal regions.
//
// What:
//
//   - Area — a set of border polygons plus a set of holes; a point is
//     inside the area when some border contains it and no hole does,
//     and Size is the border area minus the hole area.
//   - Region — a named Area (a state, a district, a zone).
//   - Site — a named point (a city, a sensor, a capital).
//   - InferHoles — marks any border of another region that lies fully
//     inside one of ours as a hole of ours, so enclaves subtract from
//     both containment and area.
//   - Classify — assigns every site to the region containing it.
//
// Why:
//
//   - Map analytics: which state is this city in, what is each state's
//     net area once enclaves are carved out.
//   - Spatial bucketing: route events to the zone they occurred in.
//
// Complexity: containment is O(v) in the region's vertex count, so
// Classify is O(sites × total vertices) and InferHoles is
// O(regions² × vertices).
package regions
