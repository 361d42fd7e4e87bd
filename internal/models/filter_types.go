package models

// TireFilters holds the optional catalog filter criteria parsed from the
// query string. A nil/empty field means "no constraint on this axis".
type TireFilters struct {
	Width          string
	Aspect         string
	Diameter       string
	Code           string
	FuelEfficiency string
	WetGrip        string
	InStock        *bool
	ModelSeason    *int
	MaxNoiseLevel  *int
}

// UserPreferences is the recommendation questionnaire. All fields are
// free-form and optional.
type UserPreferences struct {
	DrivingStyle string `json:"drivingStyle"`
	Weather      string `json:"weather"`
	Budget       string `json:"budget"`
	VehicleType  string `json:"vehicleType"`
}
