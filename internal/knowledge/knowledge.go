// Package knowledge holds the read-only knowledge bases: the skill vocabulary, careers and exams.
//
// A Base is built once at startup and shared by reference; nothing mutates it afterwards.
package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// CareerDefinition is a career the recommender can suggest.
type CareerDefinition struct {
	ID             string   `mapstructure:"id" json:"id"`
	RequiredSkills []string `mapstructure:"required-skills" json:"required_skills"`
	StudyLevel     string   `mapstructure:"study-level" json:"study_level"`
	CourseLink     string   `mapstructure:"course-link" json:"course_link"`
	PlaylistLink   string   `mapstructure:"playlist-link" json:"playlist_link"`
	Roadmap        string   `mapstructure:"roadmap" json:"roadmap"`
}

// ExamDefinition is an examination or programme with a prose eligibility description.
type ExamDefinition struct {
	Title       string `mapstructure:"title" json:"title"`
	Type        string `mapstructure:"type" json:"type"`
	Eligibility string `mapstructure:"eligibility" json:"eligibility"`
	ApplyLink   string `mapstructure:"apply-link" json:"apply_link"`
}

// Base bundles the knowledge bases. Careers and Exams keep declaration order, which breaks score ties.
type Base struct {
	Vocabulary *Vocabulary
	Careers    []CareerDefinition
	Exams      []ExamDefinition
}

// Overrides replaces parts of the built-in knowledge bases. Empty parts keep the defaults.
type Overrides struct {
	Skills   []string           `mapstructure:"skills"`
	Acronyms []string           `mapstructure:"acronyms"`
	Careers  []CareerDefinition `mapstructure:"careers"`
	Exams    []ExamDefinition   `mapstructure:"exams"`
}

// Default returns the built-in knowledge bases.
func Default() *Base {
	return &Base{
		Vocabulary: NewVocabulary(defaultSkills, defaultAcronyms),
		Careers:    append([]CareerDefinition(nil), defaultCareers...),
		Exams:      append([]ExamDefinition(nil), defaultExams...),
	}
}

// Load builds a Base from the defaults and the given overrides and validates it.
func Load(o *Overrides) (*Base, error) {
	base := Default()
	if o == nil {
		return base, nil
	}

	if len(o.Skills) > 0 || len(o.Acronyms) > 0 {
		skills, acronyms := defaultSkills, defaultAcronyms
		if len(o.Skills) > 0 {
			skills = o.Skills
		}
		if len(o.Acronyms) > 0 {
			acronyms = o.Acronyms
		}
		base.Vocabulary = NewVocabulary(skills, acronyms)
	}
	if len(o.Careers) > 0 {
		base.Careers = append([]CareerDefinition(nil), o.Careers...)
	}
	if len(o.Exams) > 0 {
		base.Exams = append([]ExamDefinition(nil), o.Exams...)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Validate rejects empty or duplicate identifiers.
func (b *Base) Validate() error {
	if b.Vocabulary == nil || b.Vocabulary.Len() == 0 {
		return errors.New("skill vocabulary is empty")
	}

	careers := make(map[string]struct{}, len(b.Careers))
	for i, c := range b.Careers {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("career #%d: id is required", i+1)
		}
		if _, ok := careers[strings.ToLower(id)]; ok {
			return fmt.Errorf("career %q is defined more than once", id)
		}
		careers[strings.ToLower(id)] = struct{}{}
	}

	exams := make(map[string]struct{}, len(b.Exams))
	for i, e := range b.Exams {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return fmt.Errorf("exam #%d: title is required", i+1)
		}
		if _, ok := exams[strings.ToLower(title)]; ok {
			return fmt.Errorf("exam %q is defined more than once", title)
		}
		exams[strings.ToLower(title)] = struct{}{}
	}

	return nil
}
