package models

import "time"

type ProjectType string

const (
	TypeMeetup     ProjectType = "Meetup"
	TypeConference ProjectType = "Conference"
	TypeProperty   ProjectType = "Property"
	TypeCustom     ProjectType = "Custom"
)

type ProjectStatus string

const (
	StatusInPlanning ProjectStatus = "In Planning"
	StatusActive     ProjectStatus = "Active"
	StatusCompleted  ProjectStatus = "Completed"
	StatusCancelled  ProjectStatus = "Cancelled"
)

// ValidProjectType reports whether t is one of the known project types.
func ValidProjectType(t ProjectType) bool {
	switch t {
	case TypeMeetup, TypeConference, TypeProperty, TypeCustom:
		return true
	}
	return false
}

// ValidProjectStatus reports whether s is one of the known project statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case StatusInPlanning, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project is the top-level planning unit (historically called an event).
// Dates travel as "YYYY-MM-DD" strings on the wire.
type Project struct {
	ID             string        `json:"id" bson:"_id"`
	Name           string        `json:"name" bson:"name"`
	Slug           string        `json:"slug" bson:"slug"`
	Type           ProjectType   `json:"type" bson:"type"`
	Status         ProjectStatus `json:"status" bson:"status"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	StartDate      string        `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate        string        `json:"endDate,omitempty" bson:"endDate,omitempty"`
	ParticipantIDs []string      `json:"participantIds" bson:"participantIds"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Area groups work inside a project. DisplayOrder drives manual sequencing.
type Area struct {
	ID             string    `json:"id" bson:"_id"`
	ProjectID      string    `json:"projectId" bson:"projectId"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	LeadID         string    `json:"leadId,omitempty" bson:"leadId,omitempty"`
	ParticipantIDs []string  `json:"participantIds" bson:"participantIds"`
	DisplayOrder   int       `json:"displayOrder" bson:"displayOrder"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// Responsibility is a grouping label for tasks under an area.
type Responsibility struct {
	ID          string `json:"id" bson:"_id"`
	AreaID      string `json:"areaId" bson:"areaId"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}
