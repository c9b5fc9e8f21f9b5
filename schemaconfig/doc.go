// Package schemaconfig loads attribute pairing schemas from YAML.
//
// A catalog lists feature types, each with its ordered fields, its geometry
// and length fields and the pairings of its direction-dependent attributes:
//
//	types:
//	  - name: road
//	    geometry: LINE
//	    length: LENGTH
//	    fields: [ID, LINE, LENGTH, ONEWAY, FROM_TURN, TO_TURN, LEFT_LANES, RIGHT_LANES]
//	    ignore: [ID, LENGTH]
//	    endPairs:
//	      - [FROM_TURN, TO_TURN]
//	    sidePairs:
//	      - [LEFT_LANES, RIGHT_LANES]
//	    directionalValues:
//	      ONEWAY:
//	        F: B
//
// Quads are listed as [startLeft, startRight, endLeft, endRight] under
// endAndSideQuads or endTurnQuads. Every entry of a directional value table
// is registered in both directions.
//
// [Parse] and [Decode] return a [Config]; [Config.Build] validates it and
// returns a [Catalog] of frozen schemas. Every validation failure is a
// [daerrors.ConfigError] whose cause is the underlying builder error.
package schemaconfig
