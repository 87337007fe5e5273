package broadcast

import (
	"sync"

	"jadwalkajian/backend/internal/broadcast/core"
	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/broadcast/grammars"
	"jadwalkajian/backend/internal/models"
)

var (
	defaultOnce       sync.Once
	defaultClassifier *core.Classifier
)

// Parse extracts schedule entries from one raw broadcast. An empty slice
// means "no recognized format", never an error.
func Parse(text string) []models.ScheduleEntry {
	return DefaultClassifier().Parse(text)
}

// ParseHTML reduces an HTML paste to text before parsing.
func ParseHTML(input string) ([]models.ScheduleEntry, error) {
	text, err := extract.TextFromHTML(input)
	if err != nil {
		return nil, err
	}
	return Parse(text), nil
}

// Detect reports which grammar would handle the broadcast.
func Detect(text string) core.Format {
	return DefaultClassifier().Detect(text)
}

// DefaultClassifier returns the shared classifier wired with both grammars.
func DefaultClassifier() *core.Classifier {
	defaultOnce.Do(func() {
		defaultClassifier = NewClassifier()
	})
	return defaultClassifier
}

// NewClassifier creates classifier.
func NewClassifier() *core.Classifier {
	return core.NewClassifier(map[core.Format]core.Grammar{
		core.FormatRekapan: grammars.NewRekapanGrammar(),
		core.FormatDauroh:  grammars.NewDaurohGrammar(),
	})
}
