package reconcile

import (
	"github.com/erraggy/dirattrs/schema"
)

// outcome is the result of the start/end rule for one attribute.
type outcome struct {
	alwaysOK bool
	// name1 on feature 1 and name2 on feature 2 must both be null
	name1, name2 string
}

// endRule decides what a start or end attribute requires for the features
// to merge. On each line, the member of the pair that sits at the junction
// must be null. When that member is the partner of name on both lines the
// partner's own check covers it.
func endRule(role schema.Role, name, partner string, o Orientation) outcome {
	start, end := name, partner
	if role == schema.RoleEnd {
		start, end = partner, name
	}
	at1 := start
	if o.Line1Forward {
		at1 = end
	}
	at2 := end
	if o.Line2Forward {
		at2 = start
	}
	if at1 == at2 && at1 != name {
		return outcome{alwaysOK: true}
	}
	return outcome{name1: at1, name2: at2}
}
