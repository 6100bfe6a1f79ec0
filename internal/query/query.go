// Package query builds request URLs for the OpenWeatherMap current
// weather endpoint. The built URL embeds the API key and must never be
// logged or shown to the user.
package query

import (
	"net/url"
	"strings"
)

// BaseURL is the OpenWeatherMap current weather endpoint.
const BaseURL = "http://api.openweathermap.org/data/2.5/weather"

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// JoinCity joins the words of a multi-word city name with single spaces.
func JoinCity(words []string) string {
	return strings.Join(words, " ")
}

// Units returns the unit-system token sent to the API.
func Units(imperial bool) string {
	if imperial {
		return UnitsImperial
	}
	return UnitsMetric
}

// Build returns base?q=<city>&units=<units>&appid=<key>. Values are
// form-encoded, so spaces in the city become '+'.
func Build(base string, cityWords []string, imperial bool, apiKey string) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("?q=")
	sb.WriteString(url.QueryEscape(JoinCity(cityWords)))
	sb.WriteString("&units=")
	sb.WriteString(Units(imperial))
	sb.WriteString("&appid=")
	sb.WriteString(url.QueryEscape(apiKey))
	return sb.String()
}
