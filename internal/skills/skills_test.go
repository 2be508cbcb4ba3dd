package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/careerise/internal/knowledge"
)

func newDefaultExtractor() *Extractor {
	return NewExtractor(knowledge.Default().Vocabulary)
}

func TestExtractOrderIndependent(t *testing.T) {
	t.Parallel()

	e := newDefaultExtractor()

	labeled := e.Extract("Skills: SQL, python, React")
	narrative := e.Extract("I know Python, SQL and React")

	assert.Equal(t, []string{"Python", "React", "SQL"}, labeled)
	assert.Equal(t, labeled, narrative)
}

func TestExtractNoMatches(t *testing.T) {
	t.Parallel()

	got := newDefaultExtractor().Extract("Enjoys hiking, woodworking and baking bread.")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractEmptyText(t *testing.T) {
	t.Parallel()

	got := newDefaultExtractor().Extract("")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractMultiWordAndSymbols(t *testing.T) {
	t.Parallel()

	text := "Built a REST\n  API with FastAPI.\nSkills - Docker | CI/CD • Problem Solving · C++"
	got := newDefaultExtractor().Extract(text)

	assert.Subset(t, got, []string{"Rest API", "Fastapi", "Docker", "CI/CD", "Problem Solving", "C++"})
}

func TestExtractIsSorted(t *testing.T) {
	t.Parallel()

	got := newDefaultExtractor().Extract("linux, docker, aws, git")

	assert.Equal(t, []string{"AWS", "Docker", "Git", "Linux"}, got)
}

func TestExtractCustomVocabulary(t *testing.T) {
	t.Parallel()

	e := NewExtractor(knowledge.NewVocabulary([]string{"go", "rust"}, nil))

	assert.Equal(t, []string{"Go", "Rust"}, e.Extract("SKILLS: Rust / Go"))
}

func TestLabeledBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{name: "colon", text: "Skills: Python, SQL\nEducation", expect: []string{"Python, SQL"}},
		{name: "singular with dash", text: "Skill- Git", expect: []string{"Git"}},
		{name: "no separator", text: "SKILLS Docker", expect: []string{"Docker"}},
		{name: "list on next line", text: "Technical Skills\nPython, Pandas", expect: []string{"Python, Pandas"}},
		{name: "several blocks", text: "Skills: A\nSoft skills: B", expect: []string{"A", "B"}},
		{name: "none", text: "Experience: 3 years", expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, LabeledBlocks(tt.text))
		})
	}
}
