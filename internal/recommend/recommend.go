// Package recommend ranks careers and exams against a candidate's skills.
//
// Scoring is deterministic and explainable: every matched skill or keyword is worth PointsPerMatch.
// The functions read the knowledge bases passed in and keep no state between calls.
package recommend

import "github.com/spigell/careerise/internal/normalize"

// PointsPerMatch is the score contribution of a single matched skill or eligibility keyword.
const PointsPerMatch = 20

// Status tells whether the profile carried enough data to rank anything.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
)

const (
	careersIncompleteMessage = "Add more skills or upload resume"
	examsIncompleteMessage   = "Add your skills or upload resume for exam recommendations."
)

// skillSet canonicalizes every non-empty skill into a lookup set.
func skillSet(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, s := range list {
			if key := normalize.Key(s); key != "" {
				set[key] = struct{}{}
			}
		}
	}
	return set
}
