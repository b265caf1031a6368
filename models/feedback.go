package models

import "time"

// Feedback is a customer review left against a staff member.
type Feedback struct {
	ID         string    `bson:"id" json:"id"`
	StaffID    string    `bson:"staffId" json:"staffId"`
	BookingID  string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	AuthorID   string    `bson:"authorId,omitempty" json:"authorId,omitempty"`
	AuthorName string    `bson:"authorName,omitempty" json:"authorName,omitempty"`
	Rating     float64   `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
