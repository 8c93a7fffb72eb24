package models

import "time"

// Option is one enumerated answer a screener question accepts. Options are
// attached to frames so clients can render click-targets.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Artifacts carries the rendered report PDFs on the final frame,
// base64-encoded.
type Artifacts struct {
	PatientPDF   string `json:"patient_pdf,omitempty"`
	ClinicianPDF string `json:"clinician_pdf,omitempty"`
}

// Frame is one unit of the outbound assistant stream. A stream is a finite,
// strictly ordered sequence of frames terminated by Done=true.
type Frame struct {
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	Done      bool       `json:"done"`
	Options   []Option   `json:"options,omitempty"`
	Artifacts *Artifacts `json:"artifacts,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// TextFrame builds a non-terminal assistant frame.
func TextFrame(content string) Frame {
	return Frame{Role: RoleAssistant, Content: content, Timestamp: time.Now().UTC()}
}

// DoneFrame builds the terminal frame of a stream.
func DoneFrame() Frame {
	return Frame{Role: RoleAssistant, Done: true, Timestamp: time.Now().UTC()}
}
