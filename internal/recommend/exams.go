package recommend

import (
	"sort"
	"strings"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/normalize"
)

// DefaultExamLimit caps the number of ranked exams.
const DefaultExamLimit = 6

// ExamMatch is one ranked exam.
type ExamMatch struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Score           int      `json:"eligibility_score"`
	ApplyLink       string   `json:"apply_link"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// ExamResult is the ranked list of exams. Matches is never nil.
type ExamResult struct {
	Status  Status      `json:"status"`
	Message string      `json:"message,omitempty"`
	Matches []ExamMatch `json:"recommended_exams"`
}

// Corpus joins the academic level and the skills into the lowercase text exam eligibility is matched against.
func Corpus(academicLevel string, userSkills, resumeSkills []string) string {
	parts := make([]string, 0, 1+len(userSkills)+len(resumeSkills))
	parts = append(parts, academicLevel)
	parts = append(parts, userSkills...)
	parts = append(parts, resumeSkills...)
	return normalize.Text(strings.Join(parts, " "))
}

// RecommendExams scores each exam by how many words of its eligibility description occur as substrings
// of the corpus: score = count * PointsPerMatch. Exams that match nothing stay in the ranking with score 0.
// The best limit exams are returned and ties keep the order of exams.
// An empty corpus yields an incomplete, empty result instead of a meaningless ranking.
func RecommendExams(exams []knowledge.ExamDefinition, academicLevel string, userSkills, resumeSkills []string, limit int) ExamResult {
	corpus := Corpus(academicLevel, userSkills, resumeSkills)
	if corpus == "" {
		return ExamResult{
			Status:  StatusIncomplete,
			Message: examsIncompleteMessage,
			Matches: []ExamMatch{},
		}
	}

	if limit <= 0 {
		limit = DefaultExamLimit
	}

	matches := make([]ExamMatch, 0, len(exams))
	for _, exam := range exams {
		matched := []string{}
		for _, word := range strings.Fields(strings.ToLower(exam.Eligibility)) {
			if strings.Contains(corpus, word) {
				matched = append(matched, word)
			}
		}

		matches = append(matches, ExamMatch{
			Title:           exam.Title,
			Type:            exam.Type,
			Score:           len(matched) * PointsPerMatch,
			ApplyLink:       exam.ApplyLink,
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return ExamResult{Status: StatusComplete, Matches: matches}
}
