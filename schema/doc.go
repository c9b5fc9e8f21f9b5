// Package schema defines which attributes of a feature type are directional
// and how they change when a line is reversed or joined to a neighbour.
//
// # Roles
//
// Every attribute name has exactly one [Role]:
//
//   - Start / End: the two halves of an end pair, e.g. FROM_TURN / TO_TURN.
//     Reversing a line swaps the values of the pair.
//   - Side: the two halves of a side pair, e.g. LEFT_LANES / RIGHT_LANES.
//     Reversing a line swaps the values of the pair.
//   - Directional: an attribute whose values are substituted on reversal,
//     e.g. FLOW with N<->S.
//   - Plain: every other attribute.
//
// End+side quads (start-left, start-right, end-left, end-right) register two
// end pairs and cross-link the diagonals for reversal: start-left becomes
// end-right. End-turn quads register the same end pairs but link them
// straight: start-left becomes end-left.
//
// # Lifecycle
//
// A [Builder] collects definitions once, typically at startup, and is not
// safe for concurrent use. [Builder.Build] freezes the definitions into a
// [Schema] that is read-only and may be shared by any number of goroutines.
//
//	b := schema.NewBuilder(roadType)
//	_ = b.AddEndPair("FROM_TURN", "TO_TURN")
//	_ = b.AddSidePair("LEFT_LANES", "RIGHT_LANES")
//	_ = b.AddDirectionalValues("FLOW", schema.StringValues(map[string]string{"N": "S"}))
//	s, err := b.Build()
//
// Definition errors are sticky: after the first [daerrors.ConflictingMappingError]
// every later call and Build return that error, and no Schema is produced.
package schema
