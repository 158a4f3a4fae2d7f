package dtos

// JobPostingCreateRequest is the body of POST /job_postings/.
type JobPostingCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// JobPostingUpdateRequest is the body of PUT /job_postings/:id.
// Partial updates are not supported: both fields must be supplied.
type JobPostingUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// JobWithStatus is a posting annotated with the requesting user's
// application status.
type JobWithStatus struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HasApplied  bool   `json:"has_applied"`
}

// ApplyResponse confirms a successful application.
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Status        string `json:"status"`
}

// UserApplicationRow is one row of a user's application history
// (applications joined with job_postings).
type UserApplicationRow struct {
	ApplicationID  string `json:"application_id"`
	JobID          string `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	Status         string `json:"status"`
}

// AdminApplicationRow is one row of the administrative listing
// (applications joined with job_postings and users).
type AdminApplicationRow struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	Status        string `json:"status"`
}
