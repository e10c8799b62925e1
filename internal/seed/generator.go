// ABOUTME: Generator builds synthetic CRM records from fixed vocabularies.
// ABOUTME: Randomness, clock, and the optional AI note writer are injected through options.

package seed

import (
	"time"

	"go.uber.org/zap"
)

// Record counts per run. These are fixed, not configuration.
const (
	AccountCount = 50

	MinContacts, MaxContacts     = 1, 3
	MinNotes, MaxNotes           = 0, 5
	MinProspects, MaxProspects   = 1, 3
	MinActivities, MaxActivities = 3, 7
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Generator creates fake CRM data. It is not safe for concurrent use.
type Generator struct {
	src   Source
	now   func() time.Time
	notes NoteWriter
	log   *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithClock fixes "now" for date arithmetic.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithNoteWriter rewrites templated note text, e.g. through OpenAI.
func WithNoteWriter(w NoteWriter) Option {
	return func(g *Generator) { g.notes = w }
}

// WithLogger sets the logger used for fallbacks and progress.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// NewGenerator creates a generator seeded from the clock unless options say otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src: NewSource(0),
		now: time.Now,
		log: zap.L(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// daysAgo returns a date between 0 and maxDays days before now.
func (g *Generator) daysAgo(maxDays int) string {
	return g.now().AddDate(0, 0, -between(g.src, 0, maxDays)).Format(DateLayout)
}

// daysAhead returns a date between minDays and maxDays days after now.
func (g *Generator) daysAhead(minDays, maxDays int) string {
	return g.now().AddDate(0, 0, between(g.src, minDays, maxDays)).Format(DateLayout)
}
