package present

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gbistila/bidupgradestest/pkg/bid"
)

// Presenter formats bid results for one locale. Bids are always in US
// dollars; the locale only decides digit grouping and separators.
type Presenter struct {
	printer *message.Printer
}

// New returns a Presenter for tag.
func New(tag language.Tag) *Presenter {
	return &Presenter{printer: message.NewPrinter(tag)}
}

// NewForLocale parses a BCP 47 tag such as "en-US".
func NewForLocale(locale string) (*Presenter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// Money renders c as a currency string, e.g. "$6,019.26".
func (p *Presenter) Money(c bid.Cents) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	// Cents below 2^53 survive the float conversion exactly to two places.
	return sign + "$" + p.printer.Sprintf("%.2f", c.Dollars().InexactFloat64())
}
