package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/testdocs"
	"github.com/spigell/careerise/internal/textextract"
)

func TestExtractProfileFromDOCX(t *testing.T) {
	t.Parallel()

	a := NewAssembler(knowledge.Default(), zap.NewNop())
	data := testdocs.DOCX(
		"Arjun Mehta",
		"arjun.mehta@example.com | +91 91234 56789",
		"B.Tech in Computer Science",
		"Skills: Python, Pandas, SQL",
	)

	p, err := a.ExtractProfile(data, "docx")
	require.NoError(t, err)

	assert.Equal(t, "Arjun Mehta", p.Name)
	assert.Equal(t, "arjun.mehta@example.com", p.Email)
	assert.Equal(t, "+91 91234 56789", p.Phone)
	assert.Equal(t, "B.Tech in Computer Science", p.Education)
	assert.Equal(t, []string{"Pandas", "Python", "SQL"}, p.Skills)
	assert.Positive(t, p.RawLength)
}

func TestExtractProfileFromPDF(t *testing.T) {
	t.Parallel()

	a := NewAssembler(knowledge.Default(), nil)
	data := testdocs.PDF("Kavya Iyer", "kavya@example.org", "Docker and Kubernetes on AWS")

	p, err := a.ExtractProfile(data, "PDF")
	require.NoError(t, err)

	assert.Equal(t, "kavya@example.org", p.Email)
	assert.Equal(t, []string{"AWS", "Docker", "Kubernetes"}, p.Skills)
}

func TestExtractProfileErrors(t *testing.T) {
	t.Parallel()

	a := NewAssembler(knowledge.Default(), nil)

	_, err := a.ExtractProfile([]byte("plain text"), "txt")
	var unsupported *textextract.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)

	_, err = a.ExtractProfile([]byte("broken"), "docx")
	var extraction *textextract.ExtractionError
	require.ErrorAs(t, err, &extraction)
}

func TestFromTextDefaults(t *testing.T) {
	t.Parallel()

	a := NewAssembler(knowledge.Default(), nil)
	p := a.FromText("This line is way too long to ever be mistaken for a name of a person.")

	assert.Equal(t, DefaultName, p.Name)
	assert.Empty(t, p.Email)
	assert.Empty(t, p.Phone)
	assert.Empty(t, p.Education)
	require.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"skills":[]`)
}

func TestFromTextRawLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	a := NewAssembler(knowledge.Default(), nil)

	assert.Equal(t, 6, a.FromText("résumé").RawLength)
}

func TestExtractProfileLogsSummary(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.DebugLevel)
	a := NewAssembler(knowledge.Default(), zap.New(core))

	_, err := a.ExtractProfile(testdocs.DOCX("Skills: Git"), "docx")
	require.NoError(t, err)

	entries := observed.FilterMessage("profile assembled").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(1), ctx["skills"])
	assert.Equal(t, "docx", ctx["document_format"])
}
