// Package dirattrs reconciles and merges the attributes of linear GIS
// features whose meaning depends on the direction of the line.
//
// A road digitized from A to B may carry a one-way flag, lane counts on its
// left and right, and turn restrictions at its start and end. Reversing the
// line, or merging it with a neighbour digitized the other way, must swap
// and substitute those values consistently. dirattrs provides the rules for
// that, driven by a per-type pairing schema.
//
// # Overview
//
// The module consists of the following packages:
//
//   - geometry: coordinate equality, reversal, touch classification and
//     line concatenation over github.com/twpayne/go-geom lines
//   - feature: feature types and attribute records
//   - schema: declares which attributes are end pairs, side pairs, quads or
//     value-substituted, and freezes them into a shareable Schema
//   - reconcile: the engine that compares, reverses, merges and splits
//     features according to a Schema
//   - schemaconfig: loads schemas from a YAML catalog
//   - daerrors: sentinel and typed errors shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/dirattrs
//
// # Quick Start
//
// Declare a feature type and its pairings:
//
//	roads, err := feature.NewType("road", "LINE", []string{
//		"LINE", "NAME", "ONEWAY", "FROM_TURN", "TO_TURN", "LEFT_LANES", "RIGHT_LANES",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	b := schema.NewBuilder(roads)
//	_ = b.AddEndPair("FROM_TURN", "TO_TURN")
//	_ = b.AddSidePair("LEFT_LANES", "RIGHT_LANES")
//	_ = b.AddDirectionalValues("ONEWAY", schema.StringValues(map[string]string{"F": "B"}))
//	s, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Merge two features at their shared endpoint:
//
//	engine, err := reconcile.New(s)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if engine.CanMerge(point, f1, f2, nil) {
//		merged, err := engine.Merge(point, f1, f2)
//		...
//	}
//
// Find out why two features cannot be merged:
//
//	report := engine.Check(point, f1, f2, nil)
//	for _, m := range report.Mismatches {
//		fmt.Println(m)
//	}
//
// # Attribute Roles
//
// Every attribute of a type has exactly one role:
//
//   - start and end attributes describe one end of the line and swap names
//     on reversal (FROM_TURN and TO_TURN)
//   - side attributes describe one side and swap names on reversal
//     (LEFT_LANES and RIGHT_LANES)
//   - directional attributes keep their name but substitute their value
//     (ONEWAY "F" becomes "B")
//   - plain attributes are unaffected by direction
//
// Quads combine both: an end-and-side quad swaps ends and sides together, an
// end-turn quad swaps ends but keeps sides.
//
// # Concurrency
//
// schema.Builder is single-goroutine. Schema and reconcile.Engine are
// immutable once built and can be shared by any number of goroutines.
// Features are never modified by the engine; every operation returns a copy.
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Configuration errors (bad names, conflicting pairings, invalid
//     options): *daerrors.ConfigError or *daerrors.ConflictingMappingError
//   - Geometry errors (lines that do not meet, closed lines, missing lines):
//     returned from Equals, Merge and SplitAttributes
//   - Attribute mismatches: not errors; reported as false from CanMerge or
//     Equals and as Mismatch values from Check
//
// Use errors.Is with the daerrors sentinels to branch on the category.
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package dirattrs
