package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Project
var (
	ErrEmptyProjectID      = fmt.Errorf("%w: project ID cannot be empty", ErrValidation)
	ErrEmptyProjectUserID  = fmt.Errorf("%w: project user ID cannot be empty", ErrValidation)
	ErrEmptyProjectTitle   = fmt.Errorf("%w: project title cannot be empty", ErrValidation)
	ErrProjectTitleTooLong = fmt.Errorf("%w: project title cannot exceed 255 characters", ErrValidation)
)

// Project is a user-owned container for tasks. Every query against projects
// is scoped by UserID so one tenant can never observe another's rows.
type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProject creates a new Project owned by the given user.
// It generates a new UUID for the project ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProject(userID uuid.UUID, title, description string) (*Project, error) {
	now := time.Now().UTC()
	project := &Project{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
// Returns an error if any field fails validation.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyProjectUserID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyProjectTitle
	}

	if len(p.Title) > 255 {
		return ErrProjectTitleTooLong
	}

	return nil
}

// ProjectProgress summarizes task completion for one project.
type ProjectProgress struct {
	ProjectID          uuid.UUID `json:"project_id"`
	ProjectTitle       string    `json:"project_title"`
	TotalTasks         int       `json:"total_tasks"`
	CompletedTasks     int       `json:"completed_tasks"`
	ProgressPercentage float64   `json:"progress_percentage"`
}

// NewProjectProgress computes the completion percentage for a project.
// A project with no tasks reports 0%.
func NewProjectProgress(project *Project, total, completed int) ProjectProgress {
	progress := ProjectProgress{
		ProjectID:      project.ID,
		ProjectTitle:   project.Title,
		TotalTasks:     total,
		CompletedTasks: completed,
	}
	if total > 0 {
		progress.ProgressPercentage = float64(completed) * 100.0 / float64(total)
	}
	return progress
}
