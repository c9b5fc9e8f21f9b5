package schemaconfig_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/dirattrs/schemaconfig"
)

func Example() {
	const catalog = `
types:
  - name: road
    geometry: LINE
    fields: [LINE, ONEWAY, FROM_TURN, TO_TURN, LEFT_LANES, RIGHT_LANES]
    endPairs:
      - [FROM_TURN, TO_TURN]
    sidePairs:
      - [LEFT_LANES, RIGHT_LANES]
    directionalValues:
      ONEWAY:
        F: B
`
	cfg, err := schemaconfig.Decode(strings.NewReader(catalog))
	if err != nil {
		fmt.Println(err)
		return
	}
	cat, err := cfg.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	road, _ := cat.Schema("road")
	fmt.Println(road.StartNames(), road.EndNames(), road.SideNames())
	fmt.Println(road.Substitute("ONEWAY", "B"))
	// Output:
	// [FROM_TURN] [TO_TURN] [LEFT_LANES RIGHT_LANES]
	// F
}
