package dto

// SubmissionResponse acknowledges a public form submission.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DeleteResponse acknowledges an admin delete.
type DeleteResponse struct {
	Message string `json:"message"`
}
