package owm

// Report is the subset of the /data/2.5/weather response this tool reads.
type Report struct {
	Name    string      `json:"name"`
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Sys     Sys         `json:"sys"`
}

// Condition is one entry of the weather list. The API lists the primary
// condition first.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Sys struct {
	Country string `json:"country"`
}
