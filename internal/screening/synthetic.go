package screening

import (
	"fmt"

	"github.com/Pallinder/go-randomdata"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// Bounds of the locally generated values.
const (
	syntheticMinScore = 580
	syntheticMaxScore = MaxScore

	syntheticMinConfidence = 85
	syntheticMaxConfidence = 100
)

var (
	paymentTrends = []string{"improving", "stable", "excellent"}
	positions     = []string{"Software Engineer", "Registered Nurse", "Account Manager", "Teacher", "Operations Analyst", "Project Coordinator"}
)

// Synthesizer produces complete, plausible Results without any external
// dependency. Values are random within fixed bounds; the shape is not.
type Synthesizer struct{}

// NewSynthesizer returns a Synthesizer backed by go-randomdata.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Results generates a Results object for applicant with every section
// populated. The risk level is always derived from the generated score.
func (s *Synthesizer) Results(applicant models.CheckRequest, source models.ResultSource) models.Results {
	score := randomdata.Number(syntheticMinScore, syntheticMaxScore+1)
	risk := DeriveRisk(score)
	jurisdictions := max(len(applicant.CheckLevel.DataSources()), 1)
	addresses := randomdata.Number(1, 4)

	return models.Results{
		OverallScore: score,
		RiskLevel:    risk,
		IdentityVerification: models.IdentityVerification{
			Status:     "verified",
			Confidence: randomdata.Number(syntheticMinConfidence, syntheticMaxConfidence+1),
			Details:    fmt.Sprintf("Identity of %s confirmed against government records", displayName(applicant)),
		},
		CreditAssessment: models.CreditAssessment{
			Score:        score,
			Status:       string(risk),
			PaymentTrend: randomdata.StringSample(paymentTrends...),
			Details:      fmt.Sprintf("Credit file reviewed, %d open accounts in good standing", randomdata.Number(2, 9)),
		},
		CriminalBackground: models.CriminalBackground{
			Status:                "clear",
			RecordsFound:          0,
			JurisdictionsSearched: jurisdictions,
			Details:               fmt.Sprintf("No records found across %d jurisdictions", jurisdictions),
		},
		EmploymentVerification: models.EmploymentVerification{
			Status:   "verified",
			Employer: fmt.Sprintf("%s %s", randomdata.SillyName(), randomdata.StringSample("LLC", "Inc.", "Group", "Partners")),
			Position: randomdata.StringSample(positions...),
			Details:  fmt.Sprintf("Employment confirmed, %d years with current employer", randomdata.Number(1, 11)),
		},
		RentalHistory: models.RentalHistory{
			Status:            "verified",
			PreviousAddresses: addresses,
			Evictions:         0,
			Details:           fmt.Sprintf("%d previous addresses, last in %s, %s", addresses, randomdata.City(), randomdata.State(randomdata.Small)),
		},
		Recommendations: RiskRecommendations(risk, score, 0),
		Source:          source,
	}
}

func displayName(applicant models.CheckRequest) string {
	if applicant.ApplicantName == "" {
		return "applicant"
	}
	return applicant.ApplicantName
}
