package models

import "time"

// The seven governance record kinds. Field names on the wire follow the
// public API: every record is echoed back with its store-assigned "_id".
// Optional fields are pointers so an unset value stays absent in storage.

// Project status values.
const (
	ProjectStatusActive    = "active"
	ProjectStatusPaused    = "paused"
	ProjectStatusCompleted = "completed"
)

// Work item status values (action plan items and tasks).
const (
	WorkStatusTodo       = "todo"
	WorkStatusInProgress = "in_progress"
	WorkStatusDone       = "done"
	WorkStatusBlocked    = "blocked"
)

// Project is the container for governance/audit initiatives. All child
// records hang off a project via project_id.
type Project struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     string `json:"owner_id"`
	Status      string `json:"status"`
}

// ScorecardMetric is a balanced-scorecard metric for a project.
type ScorecardMetric struct {
	ID           string     `json:"_id,omitempty"`
	ProjectID    string     `json:"project_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  float64    `json:"target_value"`
	CurrentValue float64    `json:"current_value"`
	Unit         string     `json:"unit"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

// ActionPlanItem is an action plan entry with owner and due date.
type ActionPlanItem struct {
	ID          string     `json:"_id,omitempty"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	OwnerID     string     `json:"owner_id,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TimelineItem is a dated event on a project timeline
// (milestone | task | review | audit).
type TimelineItem struct {
	ID          string     `json:"_id,omitempty"`
	ProjectID   string     `json:"project_id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Task is attached to a timeline item, not directly to the project.
type Task struct {
	ID             string     `json:"_id,omitempty"`
	ProjectID      string     `json:"project_id"`
	TimelineItemID string     `json:"timeline_item_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	AssigneeID     string     `json:"assignee_id,omitempty"`
	Status         string     `json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`
}

// Comment is attached to a timeline item or task. AuthorID is stamped from
// the authenticated caller.
type Comment struct {
	ID             string `json:"_id,omitempty"`
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
	AuthorID       string `json:"author_id,omitempty"`
	Content        string `json:"content"`
}

// Document holds document metadata only; the payload lives in object
// storage and is reached through its URL. UploadedBy is stamped from the
// authenticated caller.
type Document struct {
	ID             string `json:"_id,omitempty"`
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id,omitempty"`
	TaskID         string `json:"task_id,omitempty"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	UploadedBy     string `json:"uploaded_by,omitempty"`
}
