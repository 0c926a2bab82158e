package screening

import (
	"math"

	"github.com/MKhiriev/go-tenant-vet/models"
)

// Canonical score scale and risk thresholds. Every code path that derives
// a risk level from a score goes through DeriveRisk.
const (
	MinScore     = 300
	MaxScore     = 850
	DefaultScore = 650

	lowRiskFloor    = 750
	mediumRiskFloor = 650

	lowCreditScore = 600
)

// DeriveRisk maps a canonical score to its risk level:
// score >= 750 is low, 650 <= score < 750 is medium, anything lower is high.
func DeriveRisk(score int) models.RiskLevel {
	switch {
	case score >= lowRiskFloor:
		return models.RiskLow
	case score >= mediumRiskFloor:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// RescaleScore maps a 0-100 provider confidence onto the 300-850 scale,
// rounded to the nearest integer and clamped to the scale.
func RescaleScore(external float64) int {
	if math.IsNaN(external) {
		return DefaultScore
	}
	return ClampScore(int(math.Round(MinScore + external/100*(MaxScore-MinScore))))
}

// ClampScore bounds score to the canonical scale.
func ClampScore(score int) int {
	return min(max(score, MinScore), MaxScore)
}

// RiskRecommendations returns the advice list for locally produced results.
func RiskRecommendations(risk models.RiskLevel, creditScore, criminalRecords int) []string {
	var recs []string

	switch risk {
	case models.RiskLow:
		recs = []string{
			"Excellent candidate - approve with standard terms",
			"Minimal security deposit required",
			"Standard lease terms recommended",
		}
	case models.RiskMedium:
		recs = []string{
			"Good candidate - approve with standard terms",
			"Standard security deposit recommended",
			"Consider rental insurance requirement",
		}
	default:
		recs = []string{
			"Moderate risk - consider additional security measures",
			"Increased security deposit recommended",
			"Shorter lease term or co-signer suggested",
		}
	}

	if creditScore < lowCreditScore {
		recs = append(recs, "Low credit score - consider requiring co-signer")
	}
	if criminalRecords > 0 {
		recs = append(recs, "Criminal records found - review for property management suitability")
	}

	return recs
}

// RecommendedActions returns the follow-up actions for a provider
// recommendation, or nil when the recommendation is not recognised.
func RecommendedActions(recommendation string) []string {
	switch recommendation {
	case "approve":
		return []string{
			"Proceed with standard lease terms",
			"Standard security deposit required",
			"Consider preferred tenant benefits",
			"Schedule lease signing appointment",
		}
	case "approve_with_conditions":
		return []string{
			"Approve with additional security deposit",
			"Require co-signer or guarantor",
			"Consider shorter initial lease term",
			"Additional income verification required",
		}
	case "manual_review":
		return []string{
			"Schedule manual review with leasing manager",
			"Request additional documentation",
			"Consider alternative verification methods",
			"Set review deadline within 48 hours",
		}
	case "decline":
		return []string{
			"Decline application professionally",
			"Provide adverse action notice if required",
			"Suggest alternative properties if appropriate",
			"Document decision reasoning",
		}
	}
	return nil
}
