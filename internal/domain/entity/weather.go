package entity

const (
	Daytime   = "Daytime"
	Nighttime = "Nighttime"
)

// SearchResult is the normalized outcome of a successful current-conditions lookup
type SearchResult struct {
	City                string  `json:"city"`
	State               string  `json:"state"`
	Country             string  `json:"country"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	TimeZone            string  `json:"timeZone"`
	LocalTime           string  `json:"localTime"`
	Fahrenheit          float64 `json:"fahrenheit"`
	FeelsLikeFahrenheit float64 `json:"feelsLikeFahrenheit"`
	Visibility          float64 `json:"visibility"`
	WindMph             float64 `json:"wind_mph"`
	WindDirection       string  `json:"windDirection"`
	TimeOfDay           string  `json:"timeOfDay"`
	WeatherSummary      string  `json:"weatherSummary"`
	WeatherPicture      string  `json:"weatherPicture"`
}

// ErrorResult carries an error reported by the weather provider, or a local outcome shaped the same way
type ErrorResult struct {
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// TimeOfDay maps the provider's is_day flag: 0 is night, anything else is day.
func TimeOfDay(isDay int) string {
	if isDay == 0 {
		return Nighttime
	}
	return Daytime
}
