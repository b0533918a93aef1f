package models

// RegistrationDetail is a registration together with its claimed attachments.
type RegistrationDetail struct {
	RegistrationDB
	Attachments []AttachmentDB `json:"attachments"`
}

// ProjectDetail is a project together with its claimed attachments.
type ProjectDetail struct {
	ProjectDB
	Attachments []AttachmentDB `json:"attachments"`
}
