package recommend

import (
	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/store"
)

// Input is the part of a stored profile the recommenders look at.
type Input struct {
	AcademicLevel string
	UserSkills    []string
	ResumeSkills  []string
}

// FromProfile collects manual skills, résumé skills and the academic level of a stored profile.
func FromProfile(p *store.UserProfile) Input {
	if p == nil {
		return Input{UserSkills: []string{}, ResumeSkills: []string{}}
	}
	return Input{
		AcademicLevel: p.Academic.Level,
		UserSkills:    p.SkillNames(),
		ResumeSkills:  p.ResumeSkills(),
	}
}

// Careers ranks the base careers for the input.
func (in Input) Careers(base *knowledge.Base) CareerResult {
	return RecommendCareers(base.Careers, in.UserSkills, in.ResumeSkills)
}

// Exams ranks the base exams for the input, returning at most limit matches.
func (in Input) Exams(base *knowledge.Base, limit int) ExamResult {
	return RecommendExams(base.Exams, in.AcademicLevel, in.UserSkills, in.ResumeSkills, limit)
}
