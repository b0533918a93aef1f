package models

// StatsCounts holds the admin dashboard entity counts.
type StatsCounts struct {
	Users         int64 `json:"users" db:"users"`
	Registrations int64 `json:"registrations" db:"registrations"`
	Projects      int64 `json:"projects" db:"projects"`
	Attachments   int64 `json:"attachments" db:"attachments"`
}
