package presenter

import "github.com/gookit/color"

// Category is the weather group a condition code belongs to.
type Category string

const (
	Thunderstorm Category = "thunderstorm"
	Drizzle      Category = "drizzle"
	Rain         Category = "rain"
	Snow         Category = "snow"
	Atmosphere   Category = "atmosphere"
	Clear        Category = "clear"
	Clouds       Category = "clouds"
	Unmapped     Category = "unmapped"
)

// Band maps the half-open code range [Low, High) to a category and color.
type Band struct {
	Low      int
	High     int
	Category Category
	Color    color.Color
}

// Contains reports whether code falls in the band.
func (b Band) Contains(code int) bool {
	return code >= b.Low && code < b.High
}

// bands follows the OpenWeatherMap condition code groups. There are no
// codes in 400-499, and Clear is the single code 800.
var bands = [...]Band{
	{Low: 200, High: 300, Category: Thunderstorm, Color: color.FgRed},
	{Low: 300, High: 400, Category: Drizzle, Color: color.FgCyan},
	{Low: 500, High: 600, Category: Rain, Color: color.FgBlue},
	{Low: 600, High: 700, Category: Snow, Color: color.FgWhite},
	{Low: 700, High: 800, Category: Atmosphere, Color: color.FgBlue},
	{Low: 800, High: 801, Category: Clear, Color: color.FgYellow},
	{Low: 801, High: 900, Category: Clouds, Color: color.FgWhite},
}

var unmapped = Band{Category: Unmapped, Color: color.OpReset}

// Bands returns a copy of the classification table in evaluation order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}

// Classify returns the first band containing code. Codes outside every
// band get the Unmapped band, which renders in the terminal's default style.
func Classify(code int) Band {
	for _, b := range bands {
		if b.Contains(code) {
			return b
		}
	}
	return unmapped
}
