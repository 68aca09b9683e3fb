package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskBlocked, TaskCompleted:
		return true
	}
	return false
}

// Recurrence describes how a task repeats. It is stored and returned as-is;
// nothing in the service generates the next occurrence.
type Recurrence struct {
	Frequency string `json:"frequency" bson:"frequency"`
	Interval  int    `json:"interval" bson:"interval"`
	EndDate   string `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// Task belongs to a project and optionally to one of its areas. DependsOn
// holds ids of blocking tasks; they are persisted without existence or cycle
// checks. CompletedAt is set exactly when Status becomes completed.
type Task struct {
	ID               string      `json:"id" bson:"_id"`
	ProjectID        string      `json:"projectId" bson:"projectId"`
	AreaID           string      `json:"areaId,omitempty" bson:"areaId,omitempty"`
	Title            string      `json:"title" bson:"title"`
	Description      string      `json:"description,omitempty" bson:"description,omitempty"`
	AssigneeID       string      `json:"assigneeId,omitempty" bson:"assigneeId,omitempty"`
	Deadline         string      `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Status           TaskStatus  `json:"status" bson:"status"`
	SupportResources []string    `json:"supportResources,omitempty" bson:"supportResources,omitempty"`
	DependsOn        []string    `json:"dependsOn,omitempty" bson:"dependsOn,omitempty"`
	Recurrence       *Recurrence `json:"recurrence,omitempty" bson:"recurrence,omitempty"`
	CompletedAt      *time.Time  `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt        time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt" bson:"updatedAt"`
}
