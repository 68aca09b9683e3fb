package models

// TemplateTask is a task blueprint inside a template responsibility. Estado
// carries the source document's state label ("Done", "In Progress", ...).
type TemplateTask struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Estado      string `json:"estado,omitempty" bson:"estado,omitempty"`
	Stage       string `json:"stage,omitempty" bson:"stage,omitempty"`
	Notes       string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type TemplateResponsibility struct {
	Name  string         `json:"name" bson:"name"`
	Tasks []TemplateTask `json:"tasks" bson:"tasks"`
}

// TemplateArea names the team members by display name; the first listed
// member becomes the area lead on expansion.
type TemplateArea struct {
	Name             string                   `json:"name" bson:"name"`
	Description      string                   `json:"description,omitempty" bson:"description,omitempty"`
	TeamMembers      []string                 `json:"teamMembers,omitempty" bson:"teamMembers,omitempty"`
	Responsibilities []TemplateResponsibility `json:"responsibilities" bson:"responsibilities"`
}

// ProjectTemplate is a reusable blueprint expanded into a project with its
// areas, responsibilities and tasks.
type ProjectTemplate struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name"`
	ProjectType ProjectType    `json:"projectType" bson:"projectType"`
	Areas       []TemplateArea `json:"areas" bson:"areas"`
}
