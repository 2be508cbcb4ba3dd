package store

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/careerise/internal/profile"
)

// Skill is a skill entered by the user in the profile builder.
type Skill struct {
	Name  string `json:"name" mapstructure:"name"`
	Type  string `json:"type,omitempty" mapstructure:"type"`
	Level string `json:"level,omitempty" mapstructure:"level"`
}

type Academic struct {
	Level        string `json:"level" mapstructure:"level"`
	Field        string `json:"field" mapstructure:"field"`
	GPA          string `json:"gpa" mapstructure:"gpa"`
	Achievements []any  `json:"achievements" mapstructure:"achievements"`
}

type Preferences struct {
	WorkEnvironment string `json:"workEnvironment" mapstructure:"workEnvironment"`
	Arrangement     string `json:"arrangement" mapstructure:"arrangement"`
	CompanySize     string `json:"companySize" mapstructure:"companySize"`
}

// UserProfile is one stored profile record. The JSON layout is shared with the mobile client.
type UserProfile struct {
	UserID            string           `json:"userId" mapstructure:"userId"`
	Name              string           `json:"name" mapstructure:"name"`
	Email             string           `json:"email" mapstructure:"email"`
	Skills            []Skill          `json:"skills" mapstructure:"skills"`
	Academic          Academic         `json:"academic" mapstructure:"academic"`
	Interests         []map[string]any `json:"interests" mapstructure:"interests"`
	Preferences       Preferences      `json:"preferences" mapstructure:"preferences"`
	ProfileCompletion int              `json:"profileCompletion" mapstructure:"profileCompletion"`
	ResumeInfo        *profile.Profile `json:"resumeInfo,omitempty" mapstructure:"resumeInfo"`
}

// SkillNames returns the names of manually entered skills, skipping blank ones.
func (p *UserProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ResumeSkills returns the skills extracted from the last uploaded résumé.
func (p *UserProfile) ResumeSkills() []string {
	if p.ResumeInfo == nil {
		return []string{}
	}
	return append([]string{}, p.ResumeInfo.Skills...)
}

// normalized fills nil collections so records always encode as empty arrays.
func (p *UserProfile) normalized() *UserProfile {
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Interests == nil {
		p.Interests = []map[string]any{}
	}
	if p.Academic.Achievements == nil {
		p.Academic.Achievements = []any{}
	}
	if p.ResumeInfo != nil && p.ResumeInfo.Skills == nil {
		p.ResumeInfo.Skills = []string{}
	}
	return p
}

// DecodeUserProfile converts a loosely typed record into a UserProfile.
// Skills may be objects with a name or bare strings, numbers are accepted where strings are expected.
func DecodeUserProfile(raw map[string]any) (*UserProfile, error) {
	var p UserProfile

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       skillFromString,
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	return p.normalized(), nil
}

func skillFromString(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(Skill{}) || from.Kind() != reflect.String {
		return data, nil
	}
	return Skill{Name: data.(string)}, nil
}
