// Package owm fetches current weather from the OpenWeatherMap API and
// translates HTTP failures into typed errors. It never prints or logs the
// request URL, which carries the API key.
package owm
