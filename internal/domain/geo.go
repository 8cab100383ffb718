package domain

// GeoLocation is a resolved physical position. Coordinates are stored
// exactly as the device reported them; Address is the literal value the
// reverse geocoder returned for those coordinates.
type GeoLocation struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
	Address   string  `json:"address"`
}
