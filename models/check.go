package models

import "time"

// CheckLevel selects how deep a background check goes and which data
// sources take part in it.
type CheckLevel string

const (
	CheckLevelBasic         CheckLevel = "basic"
	CheckLevelStandard      CheckLevel = "standard"
	CheckLevelComprehensive CheckLevel = "comprehensive"
	CheckLevelEnterprise    CheckLevel = "enterprise"
)

// Valid reports whether l is a known check level.
func (l CheckLevel) Valid() bool {
	switch l {
	case CheckLevelBasic, CheckLevelStandard, CheckLevelComprehensive, CheckLevelEnterprise:
		return true
	}
	return false
}

// DataSources returns the orchestration data sources queried for the level.
// Unknown levels get the standard set.
func (l CheckLevel) DataSources() []string {
	switch l {
	case CheckLevelBasic:
		return []string{"chromedata", "firecrawl"}
	case CheckLevelComprehensive:
		return []string{"chromedata", "perplexity", "firecrawl", "spiderfoot"}
	case CheckLevelEnterprise:
		return []string{"chromedata", "perplexity", "firecrawl", "spiderfoot", "dev21"}
	default:
		return []string{"chromedata", "perplexity", "firecrawl"}
	}
}

// CheckStatus is the lifecycle state of a CheckRecord.
type CheckStatus string

const (
	StatusProcessing             CheckStatus = "processing"
	StatusIdentityVerification   CheckStatus = "identity_verification"
	StatusCreditHistoryAnalysis  CheckStatus = "credit_history_analysis"
	StatusPublicRecordsSearch    CheckStatus = "public_records_search"
	StatusEmploymentVerification CheckStatus = "employment_verification"
	StatusReportGeneration       CheckStatus = "report_generation"

	StatusCompleted CheckStatus = "completed"
	StatusApproved  CheckStatus = "approved"
	StatusFlagged   CheckStatus = "flagged"
	StatusDeclined  CheckStatus = "declined"
	StatusError     CheckStatus = "error"
)

// Stages is the fixed order in which the stage simulator walks a check
// after it leaves processing.
var Stages = []CheckStatus{
	StatusIdentityVerification,
	StatusCreditHistoryAnalysis,
	StatusPublicRecordsSearch,
	StatusEmploymentVerification,
	StatusReportGeneration,
}

const terminalRank = 6

// Rank returns the position of the status in the lifecycle. Every terminal
// status shares the highest rank. Unknown statuses rank -1.
func (s CheckStatus) Rank() int {
	switch s {
	case StatusProcessing:
		return 0
	case StatusIdentityVerification:
		return 1
	case StatusCreditHistoryAnalysis:
		return 2
	case StatusPublicRecordsSearch:
		return 3
	case StatusEmploymentVerification:
		return 4
	case StatusReportGeneration:
		return 5
	case StatusCompleted, StatusApproved, StatusFlagged, StatusDeclined, StatusError:
		return terminalRank
	}
	return -1
}

// IsTerminal reports whether no further transition is allowed from s.
func (s CheckStatus) IsTerminal() bool {
	return s.Rank() == terminalRank
}

// CanAdvanceTo reports whether next may follow s. A non-terminal check
// moves to the stage directly after its own or to any terminal status; no
// stage is skipped.
func (s CheckStatus) CanAdvanceTo(next CheckStatus) bool {
	if s.IsTerminal() || s.Rank() < 0 || next.Rank() < 0 {
		return false
	}
	if next.IsTerminal() {
		return true
	}
	return next.Rank() == s.Rank()+1
}

// PreviousStage returns the only non-terminal status a check may advance to
// s from. The second value is false for processing, terminal and unknown
// statuses.
func (s CheckStatus) PreviousStage() (CheckStatus, bool) {
	if s.IsTerminal() || s.Rank() < 1 {
		return "", false
	}
	return NonTerminalStatuses()[s.Rank()-1], true
}

// NonTerminalStatuses lists every status from which a check can still move.
func NonTerminalStatuses() []CheckStatus {
	return append([]CheckStatus{StatusProcessing}, Stages...)
}

// CheckRequest is the submission body of POST /checks.
//
// SensitiveID is the raw national identifier. It only lives for the duration
// of the request and the asynchronous dispatch; it is never persisted or logged.
type CheckRequest struct {
	ApplicantName   string     `json:"applicantName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	PropertyAddress string     `json:"propertyAddress"`
	SensitiveID     string     `json:"sensitiveId"`
	DateOfBirth     string     `json:"dateOfBirth"`
	CheckLevel      CheckLevel `json:"checkLevel"`
}

// CheckRecord is the stored lifecycle state of one background check.
type CheckRecord struct {
	ID     string `json:"id"`
	UserID int64  `json:"-"`

	ApplicantName     string `json:"applicantName"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	PropertyAddress   string `json:"propertyAddress,omitempty"`
	DateOfBirth       string `json:"dateOfBirth"`
	MaskedSensitiveID string `json:"maskedSensitiveId"`

	CheckLevel CheckLevel  `json:"checkLevel"`
	Status     CheckStatus `json:"status"`

	CreatedAt             time.Time  `json:"createdAt"`
	EstimatedCompletion   time.Time  `json:"estimatedCompletion"`
	CompletedAt           *time.Time `json:"completedAt,omitempty"`
	ProcessingTimeSeconds *float64   `json:"processingTimeSeconds,omitempty"`

	Results  *Results `json:"results,omitempty"`
	Fallback bool     `json:"fallback"`
	Error    string   `json:"error,omitempty"`

	Workflow *WorkflowHandle `json:"workflow,omitempty"`
}

// CheckPatch is the terminal-state update applied to a CheckRecord exactly
// once, produced by the result normalizer.
type CheckPatch struct {
	Status                CheckStatus
	Results               *Results
	Fallback              bool
	Error                 string
	CompletedAt           *time.Time
	ProcessingTimeSeconds *float64
}

// SubmitResponse is returned by POST /checks.
type SubmitResponse struct {
	CheckID             string      `json:"checkId"`
	Status              CheckStatus `json:"status"`
	EstimatedCompletion time.Time   `json:"estimatedCompletion"`
}
