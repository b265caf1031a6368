package models

// Location is the embedded address block shared by staff and bookings.
type Location struct {
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}
