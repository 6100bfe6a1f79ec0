// Package presenter renders a weather report as one colored terminal
// line: the city in reverse video, the condition description in a color
// picked from its condition code, and the temperature with its unit.
package presenter
