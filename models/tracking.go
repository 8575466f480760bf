package models

// TrackingState is the live view of a vendor on the way.
//
// Arrived == (EtaMinutesRemaining == 0), Progress == 1 - remaining/initial
// (1 when InitialEtaMinutes is 0) and VendorPosition is the linear
// interpolation between VendorStart and Destination at Progress.
type TrackingState struct {
	InitialEtaMinutes   int     `json:"initialEtaMinutes"`
	EtaMinutesRemaining int     `json:"etaMinutesRemaining"`
	Progress            float64 `json:"progress"`
	VendorStart         LatLng  `json:"vendorStart"`
	Destination         LatLng  `json:"destination"`
	VendorPosition      LatLng  `json:"vendorPosition"`
	DistanceRemainingKm float64 `json:"distanceRemainingKm"`
	Arrived             bool    `json:"arrived"`
}
