package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/careerise/internal/profile"
	"github.com/spigell/careerise/internal/recommend"
	"github.com/spigell/careerise/internal/store"
)

func newRecommendFlags(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("user", "", "")
	cmd.Flags().StringSlice("skills", nil, "")
	cmd.Flags().StringSlice("resume-skills", nil, "")
	cmd.Flags().String("level", "", "")

	for name, value := range values {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestRecommendInputFromFlags(t *testing.T) {
	t.Parallel()

	st := store.New(filepath.Join(t.TempDir(), "profiles.json"), nil)
	cmd := newRecommendFlags(t, map[string]string{
		"skills":        "python,sql",
		"resume-skills": "pandas",
		"level":         "BTech",
	})

	in, err := recommendInput(cmd, st)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql"}, in.UserSkills)
	assert.Equal(t, []string{"pandas"}, in.ResumeSkills)
	assert.Equal(t, "BTech", in.AcademicLevel)
}

func TestRecommendInputMergesStoredProfile(t *testing.T) {
	t.Parallel()

	st := store.New(filepath.Join(t.TempDir(), "profiles.json"), nil)
	require.NoError(t, st.Save(&store.UserProfile{
		UserID:   "u1",
		Skills:   []store.Skill{{Name: "Python"}},
		Academic: store.Academic{Level: "MSc"},
	}))
	_, err := st.AttachResume("u1", &profile.Profile{Skills: []string{"SQL"}})
	require.NoError(t, err)

	cmd := newRecommendFlags(t, map[string]string{"user": "u1", "skills": "react"})

	in, err := recommendInput(cmd, st)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "react"}, in.UserSkills)
	assert.Equal(t, []string{"SQL"}, in.ResumeSkills)
	assert.Equal(t, "MSc", in.AcademicLevel)
}

func TestRecommendInputUnknownUser(t *testing.T) {
	t.Parallel()

	st := store.New(filepath.Join(t.TempDir(), "profiles.json"), nil)
	cmd := newRecommendFlags(t, map[string]string{"user": "ghost"})

	_, err := recommendInput(cmd, st)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCareerDetails(t *testing.T) {
	t.Parallel()

	m := recommend.CareerMatch{
		Role:          "Data Analyst",
		Score:         60,
		MatchedSkills: []string{"python", "sql", "pandas"},
		MissingSkills: []string{"excel"},
		Roadmap:       "Master SQL",
	}

	assert.Equal(t, "Data Analyst (60)", careerLabel(m))

	details := careerDetails(m)
	assert.True(t, strings.HasPrefix(details, "Data Analyst\n"))
	assert.Contains(t, details, "missing: [excel]")
	assert.Contains(t, details, "roadmap: Master SQL")
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	require.NoError(t, printJSON(&out, recommend.CareerResult{Status: recommend.StatusIncomplete, Matches: []recommend.CareerMatch{}}))

	assert.Equal(t, "{\n  \"status\": \"incomplete\",\n  \"careers\": []\n}\n", out.String())
}
