package models

// RiskLevel is derived from an overall score through fixed thresholds.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ResultSource tells where a Results object came from.
type ResultSource string

const (
	SourceOrchestration ResultSource = "orchestration"
	SourceFallback      ResultSource = "fallback"
	SourceSimulator     ResultSource = "simulator"
)

// Results is the canonical outcome of a completed check. Every section is
// always present, whichever path produced it.
type Results struct {
	OverallScore int       `json:"overallScore"`
	RiskLevel    RiskLevel `json:"riskLevel"`

	IdentityVerification   IdentityVerification   `json:"identityVerification"`
	CreditAssessment       CreditAssessment       `json:"creditAssessment"`
	CriminalBackground     CriminalBackground     `json:"criminalBackground"`
	EmploymentVerification EmploymentVerification `json:"employmentVerification"`
	RentalHistory          RentalHistory          `json:"rentalHistory"`

	// Recommendations is an ordered list of advisory strings. Never empty
	// once a check completes.
	Recommendations []string `json:"recommendations"`

	Source ResultSource `json:"source"`
}

type IdentityVerification struct {
	Status     string `json:"status"`
	Confidence int    `json:"confidence"`
	Details    string `json:"details"`
}

type CreditAssessment struct {
	Score        int    `json:"score"`
	Status       string `json:"status"`
	PaymentTrend string `json:"paymentTrend"`
	Details      string `json:"details"`
}

type CriminalBackground struct {
	Status                string `json:"status"`
	RecordsFound          int    `json:"recordsFound"`
	JurisdictionsSearched int    `json:"jurisdictionsSearched"`
	Details               string `json:"details"`
}

type EmploymentVerification struct {
	Status   string `json:"status"`
	Employer string `json:"employer"`
	Position string `json:"position"`
	Details  string `json:"details"`
}

type RentalHistory struct {
	Status            string `json:"status"`
	PreviousAddresses int    `json:"previousAddresses"`
	Evictions         int    `json:"evictions"`
	Details           string `json:"details"`
}
