// Package profile assembles a structured candidate profile from a résumé document.
package profile

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/careerise/internal/entity"
	"github.com/spigell/careerise/internal/knowledge"
	"github.com/spigell/careerise/internal/logger"
	"github.com/spigell/careerise/internal/skills"
	"github.com/spigell/careerise/internal/textextract"
	"github.com/spigell/careerise/internal/utils"
)

// DefaultName is used when no name could be guessed from the document.
const DefaultName = "Candidate"

const defaultPreviewLength = 120

// Profile is the result of one extraction call.
type Profile struct {
	Name      string   `json:"name" mapstructure:"name"`
	Email     string   `json:"email" mapstructure:"email"`
	Phone     string   `json:"phone" mapstructure:"phone"`
	Skills    []string `json:"skills" mapstructure:"skills"`
	Education string   `json:"education" mapstructure:"education"`
	RawLength int      `json:"raw_length" mapstructure:"raw_length"`
}

// Assembler runs text extraction, entity extraction and skill extraction over a document.
// It holds no per-call state and is safe for concurrent use.
type Assembler struct {
	skills     *skills.Extractor
	logger     *zap.Logger
	previewLen int
}

func NewAssembler(base *knowledge.Base, log *zap.Logger) *Assembler {
	return &Assembler{
		skills:     skills.NewExtractor(base.Vocabulary),
		logger:     logger.WithFields(log),
		previewLen: defaultPreviewLength,
	}
}

// ExtractProfile converts document bytes into a Profile.
// Errors are *textextract.UnsupportedFormatError or *textextract.ExtractionError.
func (a *Assembler) ExtractProfile(data []byte, format string) (*Profile, error) {
	log := logger.WithDocumentFields(a.logger, "", format)

	text, err := textextract.Extract(textextract.RawDocument{Data: data, Format: format})
	if err != nil {
		log.Debug("text extraction failed", zap.Int("size_bytes", len(data)), zap.Error(err))
		return nil, err
	}

	raw := text.String()
	log.Debug("text extracted",
		zap.Int("segments", len(text.Segments)),
		zap.Int("raw_length", utf8.RuneCountInString(raw)),
		zap.String("text_preview", utils.TruncateForLog(raw, a.previewLen)),
	)

	p := a.FromText(raw)

	log.Debug("profile assembled",
		zap.Int("skills", len(p.Skills)),
		zap.Bool("email_found", p.Email != ""),
		zap.Bool("phone_found", p.Phone != ""),
		zap.Bool("education_found", p.Education != ""),
	)

	return p, nil
}

// FromText builds a Profile from already extracted text. Defaults are applied here: an unresolved name
// becomes DefaultName and skills is always a non-nil slice.
func (a *Assembler) FromText(text string) *Profile {
	entities := entity.Extract(text)

	name := entities.Name
	if name == "" {
		name = DefaultName
	}

	found := a.skills.Extract(text)
	if found == nil {
		found = []string{}
	}

	return &Profile{
		Name:      name,
		Email:     entities.Email,
		Phone:     entities.Phone,
		Skills:    found,
		Education: entities.Education,
		RawLength: utf8.RuneCountInString(text),
	}
}
