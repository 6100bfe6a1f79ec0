package presenter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/vk/weather/internal/owm"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Padding is the width the city and the description are centered in.
const Padding = 20

// ErrNoConditions is returned for a report with an empty weather list.
var ErrNoConditions = errors.New("response contains no weather conditions")

// Presenter writes reports to a terminal.
type Presenter struct {
	mode  Mode
	upper cases.Caser
	lower cases.Caser
}

// New creates a Presenter using the given color mode.
func New(mode Mode) *Presenter {
	return &Presenter{
		mode:  mode,
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
	}
}

// Render writes one line for the report: city, description and
// temperature. Only the first weather condition is shown.
func (p *Presenter) Render(w io.Writer, report *owm.Report, imperial bool) error {
	if len(report.Weather) == 0 {
		return ErrNoConditions
	}
	condition := report.Weather[0]
	band := Classify(condition.ID)

	var sb strings.Builder
	sb.WriteString(p.paint(color.OpReverse, center(report.Name, Padding)))
	sb.WriteString("\t")
	sb.WriteString(p.paint(band.Color, center(p.capitalize(condition.Description), Padding)))
	sb.WriteString(" (")
	sb.WriteString(FormatTemperature(report.Main.Temp, imperial))
	sb.WriteString(")\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (p *Presenter) paint(c color.Color, text string) string {
	switch p.mode {
	case ColorNever:
		return text
	case ColorAlways:
		return fmt.Sprintf(color.FullColorTpl, c.String(), text)
	default:
		return c.Render(text)
	}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func (p *Presenter) capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return p.upper.String(string(r)) + p.lower.String(s[size:])
}

// FormatTemperature renders the shortest decimal form of temp followed by
// the degree sign and F or C.
func FormatTemperature(temp float64, imperial bool) string {
	unit := "C"
	if imperial {
		unit = "F"
	}
	return strconv.FormatFloat(temp, 'f', -1, 64) + "°" + unit
}

// center pads s with spaces to width runes. When the padding is odd the
// extra space goes on the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
