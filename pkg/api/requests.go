package api

// StartRequest is the body for POST /intake/start. Both fields are optional;
// an empty body starts an anonymous session.
type StartRequest struct {
	PatientID *string `json:"patient_id,omitempty"`
	UserName  string  `json:"user_name,omitempty"`
}

// ChatRequest is the body for POST /intake/chat. Control directives
// (:pause, :finish, :skip) arrive through Prompt like any other turn.
type ChatRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
	Prompt       string `json:"prompt"`
}

// PauseRequest is the body for POST /intake/pause.
type PauseRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
}

// ResumeRequest is the body for POST /intake/resume.
type ResumeRequest struct {
	ResumeToken string `json:"resume_token" binding:"required"`
}

// FinishRequest is the body for POST /intake/finish.
type FinishRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
}
