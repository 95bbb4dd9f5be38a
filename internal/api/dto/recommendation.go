package dto

// LocationRequest is one end of the flight. Lat and Lon are pointers so that
// the equator and the prime meridian still pass the required check.
type LocationRequest struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon  *float64 `json:"lon" validate:"required,min=-180,max=180"`
	TZ   string   `json:"tz" validate:"required,timezone"`
}

type RecommendationRequest struct {
	Origin      LocationRequest `json:"origin"`
	Destination LocationRequest `json:"destination"`
	// ISO 8601; without an offset it is read in the origin timezone.
	LocalDatetime string `json:"local_datetime" validate:"required"`
	Interest      string `json:"interest" validate:"required,oneof=sunrise sunset"`
}

type PhaseTimesResponse struct {
	CivilDawn string `json:"civil_dawn"`
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	CivilDusk string `json:"civil_dusk"`
}

type MidpointResponse struct {
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	SunAzimuthDeg    float64  `json:"sun_azimuth_deg"`
	RelativeAngleDeg *float64 `json:"relative_angle_deg,omitempty"`
}

type RecommendationResponse struct {
	Side             string             `json:"side" validate:"required,oneof=LEFT RIGHT EITHER"`
	Confidence       string             `json:"confidence" validate:"required,oneof=HIGH MEDIUM LOW"`
	BearingDeg       float64            `json:"bearing_deg"`
	SunAzimuthDeg    float64            `json:"sun_azimuth_deg"`
	RelativeAngleDeg float64            `json:"relative_angle_deg"`
	GoldenHour       bool               `json:"golden_hour"`
	PhaseTimes       PhaseTimesResponse `json:"phase_times"`
	Midpoint         MidpointResponse   `json:"midpoint"`
	Stability        string             `json:"stability" validate:"required,oneof=HIGH MEDIUM LOW"`
	Notes            string             `json:"notes"`
}

type ExportPdfRequest struct {
	Recommendation RecommendationResponse `json:"recommendation"`
	// Optional PNG, plain base64 or a data URL.
	MapPNGBase64 string `json:"map_png_base64"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
