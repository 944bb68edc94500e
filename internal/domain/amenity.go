package domain

// Amenity is a named room feature used for filtering room search.
type Amenity string

// Known amenities. Rooms may carry any Amenity value; these are the ones
// the planning UI offers.
const (
	AmenityAVEquipment Amenity = "av_equipment"
	AmenityPodium      Amenity = "podium"
	AmenityTables      Amenity = "tables"
	AmenityChairs      Amenity = "chairs"
	AmenityWifi        Amenity = "wifi"
	AmenityRestrooms   Amenity = "restrooms"
)
