package external

// CurrentWeatherResponse is the body of the provider's current conditions endpoint.
// Exactly one of Error or (Location, Current) is expected to be set.
type CurrentWeatherResponse struct {
	Error    *APIError        `json:"error,omitempty"`
	Location *LocationPayload `json:"location,omitempty" validate:"required_without=Error"`
	Current  *CurrentPayload  `json:"current,omitempty" validate:"required_without=Error"`
}

// APIError is the provider's error object, e.g. {"code": 1006, "message": "No matching location found."}
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LocationPayload struct {
	Name      string  `json:"name" validate:"required"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TzID      string  `json:"tz_id"`
	Localtime string  `json:"localtime"`
}

type CurrentPayload struct {
	TempF      float64          `json:"temp_f"`
	FeelslikeF float64          `json:"feelslike_f"`
	VisMiles   float64          `json:"vis_miles"`
	WindMph    float64          `json:"wind_mph"`
	WindDir    string           `json:"wind_dir"`
	IsDay      int              `json:"is_day"`
	Condition  ConditionPayload `json:"condition"`
}

type ConditionPayload struct {
	Text string `json:"text" validate:"required"`
	Icon string `json:"icon"`
}
