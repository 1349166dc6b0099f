package entities

import "time"

// LanguageReport summarizes what one target language received during a run.
type LanguageReport struct {
	Lang        string
	NewLanguage bool     // no target file existed, full source tree sent
	SentLeaves  int      // leaves sent to the provider
	SentChars   int      // characters sent (quota unit)
	Orphans     []string // dotted paths removed after merge
}

// RunReport is the outcome of one synchronization (or dry) run.
type RunReport struct {
	RunID      string
	SourceLang string
	StartedAt  time.Time
	Skipped    bool // empty delta and no new language: provider never called
	DryRun     bool
	Languages  []LanguageReport
}

// TotalChars returns the character count across all languages, the number a
// quota check compares against the provider's remaining allowance.
func (r *RunReport) TotalChars() int {
	total := 0
	for _, l := range r.Languages {
		total += l.SentChars
	}
	return total
}
