package present

import (
	"fmt"
	"strconv"

	"github.com/gbistila/bidupgradestest/pkg/bid"
)

const handoffTemplate = `Concrete Installation:
- %s labor hours
- %s yards road base at %s inches thick
- %s yards concrete (%s ordered — %s budget)`

// HandoffText fills the crew handoff template. thickness is echoed as the
// user entered it.
func (p *Presenter) HandoffText(h bid.Handoff, thickness string) string {
	return fmt.Sprintf(handoffTemplate,
		Quantity(h.TotalLaborHours),
		Quantity(h.RoadBaseLooseCY),
		thickness,
		Quantity(h.ConcreteDesignCY),
		Quantity(h.ConcreteOrderedCY),
		p.Money(h.ConcreteBudget),
	)
}

// Quantity prints v in its shortest exact form: 7.41, 1.3, 4.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
