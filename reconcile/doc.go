// Package reconcile compares, reverses, merges and splits linear features
// whose attributes depend on the direction of the line.
//
// An [Engine] wraps a frozen [schema.Schema]. Every operation is synchronous,
// leaves its inputs untouched and returns new features, so one Engine can
// serve any number of goroutines.
//
// # Orientation
//
// Two lines meeting at a junction point are classified by [Resolve] into one
// of four touch configurations, each giving a forward flag per line. A line
// is forward when the junction is at its end for line 1, or at its start for
// line 2:
//
//	<--*-->  start-start  line1 backward, line2 forward
//	-->*<--  end-end      line1 forward,  line2 backward
//	-->*-->  end-start    both forward
//	<--*<--  start-end    both backward
//
// # Mergeability
//
// [Engine.CanMerge] first requires the lines to meet at the junction, then
// checks every attribute that is neither excluded by the caller nor ignored
// by the feature type:
//
//   - geometry: the lines must not be duplicates, in either direction.
//   - directional values and side pairs: only checked when the lines run in
//     opposite directions, comparing against the substituted value or the
//     opposite side.
//   - start and end attributes: values sitting at the junction would be lost
//     by a merge, so they must be null.
//   - everything else: the values must be equal, name for name.
//
// [Engine.CantMergeAttributes] and [Engine.Check] run the same traversal and
// report every failing attribute.
//
// # Equality
//
// [Engine.Equals] compares two features that may have been digitized in
// opposite directions. Unlike the mergeability check it reads the second
// feature reversed when the lines do not start at the same point. Closed
// lines are rejected with a [daerrors.UnsupportedLoopError].
//
// # Merging
//
//	engine, err := reconcile.New(s, reconcile.WithSlogLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//	if engine.CanMerge(point, f1, f2, nil) {
//		merged, err := engine.Merge(point, f1, f2)
//		...
//	}
package reconcile
