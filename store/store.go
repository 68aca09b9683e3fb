// Package store defines the persistence contract shared by the sqlite,
// mongo and flat-file drivers. Lookups return (nil, nil) when the entity
// does not exist; not-found is decided by the caller, not here.
package store

import (
	"context"
	"time"

	"github.com/andyguzmaneth/ethcr-planner-sub000/models"
)

// AreaOrder is one entry of a bulk reorder request.
type AreaOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ProjectUpdate carries the fields of a partial project update. Nil means
// "leave unchanged".
type ProjectUpdate struct {
	Name        *string
	Type        *models.ProjectType
	Status      *models.ProjectStatus
	Description *string
	StartDate   *string
	EndDate     *string
}

// AreaUpdate carries the fields of a partial area update. A provided
// ParticipantIDs slice replaces the whole participant set.
type AreaUpdate struct {
	Name           *string
	Description    *string
	LeadID         *string
	ParticipantIDs *[]string
}

// TaskUpdate carries the fields of a partial task update. When Status is
// provided, CompletedAt is written alongside it (nil clears the column);
// the completed-at rule itself lives in the task service.
type TaskUpdate struct {
	AreaID           *string
	Title            *string
	Description      *string
	AssigneeID       *string
	Deadline         *string
	Status           *models.TaskStatus
	CompletedAt      *time.Time
	SupportResources *[]string
	DependsOn        *[]string
	Recurrence       *models.Recurrence
}

// MeetingUpdate carries the fields of a partial meeting update.
type MeetingUpdate struct {
	Title       *string
	Date        *string
	Time        *string
	AttendeeIDs *[]string
}

// NoteUpdate carries the fields of a partial meeting-note update.
type NoteUpdate struct {
	Content     *string
	Agenda      *string
	Decisions   *string
	ActionItems *[]string
}

// Store is the persistence surface the services are written against.
// Create methods insert the primary record plus its relation rows and
// return the re-fetched record; Update methods apply only provided fields
// and full-replace any provided multi-valued relation.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Projects
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, id string, upd ProjectUpdate) (*models.Project, error)
	AddProjectParticipant(ctx context.Context, projectID, userID string) error
	RemoveProjectParticipant(ctx context.Context, projectID, userID string) error

	// Areas
	CreateArea(ctx context.Context, a *models.Area) (*models.Area, error)
	GetArea(ctx context.Context, id string) (*models.Area, error)
	ListAreasByProject(ctx context.Context, projectID string) ([]models.Area, error)
	UpdateArea(ctx context.Context, id string, upd AreaUpdate) (*models.Area, error)
	DeleteArea(ctx context.Context, id string) error
	ReorderAreas(ctx context.Context, orders []AreaOrder) error

	// Responsibilities
	CreateResponsibility(ctx context.Context, r *models.Responsibility) error
	ListResponsibilitiesByArea(ctx context.Context, areaID string) ([]models.Responsibility, error)

	// Tasks
	CreateTask(ctx context.Context, t *models.Task) (*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasksByProject(ctx context.Context, projectID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Meetings
	CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*models.Meeting, error)
	ListMeetingsByProject(ctx context.Context, projectID string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, upd MeetingUpdate) (*models.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error

	// Meeting notes
	CreateMeetingNote(ctx context.Context, n *models.MeetingNote) error
	GetMeetingNote(ctx context.Context, id string) (*models.MeetingNote, error)
	GetMeetingNoteByMeeting(ctx context.Context, meetingID string) (*models.MeetingNote, error)
	UpdateMeetingNote(ctx context.Context, id string, upd NoteUpdate) (*models.MeetingNote, error)

	// Templates
	CreateTemplate(ctx context.Context, t *models.ProjectTemplate) error
	GetTemplate(ctx context.Context, id string) (*models.ProjectTemplate, error)
	ListTemplates(ctx context.Context) ([]models.ProjectTemplate, error)

	Close() error
}
