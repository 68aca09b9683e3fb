package models

import "time"

// Meeting is scheduled on a project. Date is "YYYY-MM-DD" and Time "HH:MM",
// as submitted by the client.
type Meeting struct {
	ID          string   `json:"id" bson:"_id"`
	ProjectID   string   `json:"projectId" bson:"projectId"`
	Title       string   `json:"title" bson:"title"`
	Date        string   `json:"date" bson:"date"`
	Time        string   `json:"time" bson:"time"`
	AttendeeIDs []string `json:"attendeeIds" bson:"attendeeIds"`
}

// MeetingNote is the single note attached to a meeting.
type MeetingNote struct {
	ID          string    `json:"id" bson:"_id"`
	MeetingID   string    `json:"meetingId" bson:"meetingId"`
	Content     string    `json:"content" bson:"content"`
	Agenda      string    `json:"agenda,omitempty" bson:"agenda,omitempty"`
	Decisions   string    `json:"decisions,omitempty" bson:"decisions,omitempty"`
	ActionItems []string  `json:"actionItems,omitempty" bson:"actionItems,omitempty"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
