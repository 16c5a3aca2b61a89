package models

import "time"

// Session state constants, as reported by GET /session.
const (
	StateUninitialized   = "uninitialized"
	StateNotReady        = "not_ready"
	StatePendingApproval = "pending_approval"
	StateRunning         = "running"
	StateClosed          = "closed"
)

// Request types

type LoginRequest struct {
	SSN      string `json:"ssn"`
	Password string `json:"password"`
}

// ChoiceSpec is one choice of a paper being defined. Sub is only legal on
// preferenced papers and nests the sub-paper opened by this choice.
type ChoiceSpec struct {
	Name string     `json:"name"`
	Sub  *PaperSpec `json:"sub,omitempty"`
}

// PaperSpec defines one voting paper of a new session. AgeThreshold, when
// present, gates the paper with an adult decider; absent means anyone
// registered may vote.
type PaperSpec struct {
	Title        string       `json:"title"`
	Method       string       `json:"method"`
	AgeThreshold *int         `json:"age_threshold,omitempty"`
	Choices      []ChoiceSpec `json:"choices"`
}

type InitializeSessionRequest struct {
	Start      time.Time   `json:"start"`
	End        time.Time   `json:"end"`
	Guarantors []string    `json:"guarantors"` // SSNs
	Papers     []PaperSpec `json:"papers"`
}

// CastVoteRequest is a method-specific ballot. Exactly one of Chosen or
// Order is used, depending on the paper's method. Sub carries the nested
// ballot for the sub-paper opened by Chosen on preferenced papers.
type CastVoteRequest struct {
	Chosen string           `json:"chosen,omitempty"`
	Order  []string         `json:"order,omitempty"`
	Sub    *CastVoteRequest `json:"sub,omitempty"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type SessionStatusResponse struct {
	State      string     `json:"state"`
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	EndsIn     string     `json:"ends_in,omitempty"`
	Ready      bool       `json:"ready"`
	Approvals  int        `json:"approvals"`
	Guarantors int        `json:"guarantors"`
	Papers     int        `json:"papers"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}

type ChoiceView struct {
	Name string     `json:"name"`
	Sub  *PaperView `json:"sub,omitempty"`
}

type PaperView struct {
	Index   int          `json:"index,omitempty"`
	Title   string       `json:"title"`
	Method  string       `json:"method"`
	Choices []ChoiceView `json:"choices"`
}

type CastVoteResponse struct {
	Receipt     string `json:"receipt"`
	SubAccepted *bool  `json:"sub_accepted,omitempty"`
	SubError    string `json:"sub_error,omitempty"`
}

type ChoiceResult struct {
	Name          string           `json:"name"`
	Score         int              `json:"score"`
	RelativeScore float64          `json:"relative_score"`
	Sub           *ResultsResponse `json:"sub,omitempty"`
}

// ResultsResponse reports a closed paper's tally. Results are ordered
// ascending by score; the winner is the last entry.
type ResultsResponse struct {
	Title      string         `json:"title"`
	Method     string         `json:"method"`
	TotalVotes int            `json:"total_votes"`
	Turnout    float64        `json:"turnout"`
	Results    []ChoiceResult `json:"results"`
	Winner     string         `json:"winner,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
