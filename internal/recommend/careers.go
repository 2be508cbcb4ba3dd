package recommend

import (
	"sort"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/normalize"
)

// CareerMatch is one ranked career with the skills that explain its score.
type CareerMatch struct {
	Role           string   `json:"role"`
	Score          int      `json:"score"`
	RequiredSkills []string `json:"required_skills"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	StudyLevel     string   `json:"study_level,omitempty"`
	CourseLink     string   `json:"course_link,omitempty"`
	PlaylistLink   string   `json:"playlist_link,omitempty"`
	Roadmap        string   `json:"roadmap,omitempty"`
}

// CareerResult is the ranked list of careers. Matches is never nil.
type CareerResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Matches []CareerMatch `json:"careers"`
}

// RecommendCareers scores every career by the overlap between its required skills and the union of
// userSkills and resumeSkills: score = overlap * PointsPerMatch. Careers without overlap are dropped.
// Results are ordered by score, ties keep the order of careers.
// Without any skill the result is incomplete and empty.
func RecommendCareers(careers []knowledge.CareerDefinition, userSkills, resumeSkills []string) CareerResult {
	have := skillSet(userSkills, resumeSkills)
	if len(have) == 0 {
		return CareerResult{
			Status:  StatusIncomplete,
			Message: careersIncompleteMessage,
			Matches: []CareerMatch{},
		}
	}

	matches := make([]CareerMatch, 0, len(careers))
	for _, career := range careers {
		matched, missing := splitRequired(career.RequiredSkills, have)
		if len(matched) == 0 {
			continue
		}

		matches = append(matches, CareerMatch{
			Role:           career.ID,
			Score:          len(matched) * PointsPerMatch,
			RequiredSkills: append([]string(nil), career.RequiredSkills...),
			MatchedSkills:  matched,
			MissingSkills:  missing,
			StudyLevel:     career.StudyLevel,
			CourseLink:     career.CourseLink,
			PlaylistLink:   career.PlaylistLink,
			Roadmap:        career.Roadmap,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return CareerResult{Status: StatusComplete, Matches: matches}
}

// splitRequired partitions the canonical required skills into those the candidate has and those missing.
// A required skill listed twice counts once.
func splitRequired(required []string, have map[string]struct{}) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		key := normalize.Key(r)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := have[key]; ok {
			matched = append(matched, key)
		} else {
			missing = append(missing, key)
		}
	}
	return matched, missing
}
