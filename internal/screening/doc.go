// Package screening holds the local decision logic of a background check.
//
// It converts provider answers and locally generated data into the
// canonical check patch (Normalize), derives risk from scores with one set
// of thresholds, synthesizes results when the orchestration dependency is
// unreachable (FallbackGenerator) and walks checks through their stages
// when no orchestration is configured (StageSimulator).
package screening
