package models

import "time"

// ProjectDB represents a project record in the database
type ProjectDB struct {
	ProjectID   int64     `json:"project_id" db:"project_id"`
	UID         int64     `json:"uid" db:"uid"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	RepoURL     *string   `json:"repo_url" db:"repo_url"`
	DemoURL     *string   `json:"demo_url" db:"demo_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
