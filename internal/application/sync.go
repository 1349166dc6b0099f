package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/domain/tree"
	"localesync/internal/ports/input"
	"localesync/internal/ports/output"
)

// Ensure SyncService implements the input.Syncer port.
var _ input.Syncer = (*SyncService)(nil)

// Options carry the per-run settings the CLI resolved from configuration.
type Options struct {
	SourceLang  string
	TargetLangs []string
	Formality   string
	CheckQuota  bool // ask the provider for its character quota before translating
}

// SyncService orchestrates one synchronization cycle over the pure tree
// operations: diff against the lock snapshot, partition per-language
// payloads, translate, merge, prune, persist, and finally rewrite the lock.
type SyncService struct {
	translator output.Translator
	locales    output.LocaleStore
	lock       output.LockStore
	history    output.HistoryStore
	opts       Options

	newRunID func() string
}

func NewSyncService(
	translator output.Translator,
	locales output.LocaleStore,
	lock output.LockStore,
	history output.HistoryStore,
	opts Options,
) *SyncService {
	return &SyncService{
		translator: translator,
		locales:    locales,
		lock:       lock,
		history:    history,
		opts:       opts,
		newRunID:   uuid.NewString,
	}
}

// payload is one target language's slice of work for this run.
type payload struct {
	lang    string
	newLang bool // no target file yet: receives the full source tree
	body    *tree.Branch
}

// plan loads the source tree and lock snapshot and partitions the delta into
// per-language payloads. Nothing is written and the provider is not called.
//
// A brand-new language gets the full source tree; an established one only
// gets the delta. All-empty payloads mean the run has zero work.
func (s *SyncService) plan(report *entities.RunReport) (source *tree.Branch, payloads []payload, err error) {
	if !s.locales.Exists(s.opts.SourceLang) {
		return nil, nil, fmt.Errorf("%w (%s.json)", domain.ErrNoSourceFile, s.opts.SourceLang)
	}
	source, err = s.locales.Read(s.opts.SourceLang)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := s.lock.Read(s.opts.SourceLang)
	if err != nil {
		return nil, nil, err
	}
	delta := tree.Diff(source, snapshot)

	for _, lang := range s.opts.TargetLangs {
		p := payload{lang: lang, newLang: !s.locales.Exists(lang)}
		if p.newLang {
			p.body = source.Clone()
		} else {
			p.body = delta.Clone()
		}
		payloads = append(payloads, p)

		report.Languages = append(report.Languages, entities.LanguageReport{
			Lang:        lang,
			NewLanguage: p.newLang,
			SentLeaves:  tree.LeafCount(p.body),
			SentChars:   tree.CharCount(p.body),
		})
	}
	return source, payloads, nil
}

func (s *SyncService) newReport(dry bool) *entities.RunReport {
	return &entities.RunReport{
		RunID:      s.newRunID(),
		SourceLang: s.opts.SourceLang,
		StartedAt:  time.Now(),
		DryRun:     dry,
	}
}

// Sync implements input.Syncer.
//
// Any provider failure aborts the whole run before the lock snapshot is
// rewritten, so the next run re-sends the same delta. Target files merged
// earlier in the same run may already be on disk; re-merging the same batch
// is a no-op, which makes the retry safe (at-least-once, never partial lock
// state).
func (s *SyncService) Sync(ctx context.Context) (*entities.RunReport, error) {
	report := s.newReport(false)
	source, payloads, err := s.plan(report)
	if err != nil {
		return nil, err
	}

	if allEmpty(payloads) {
		report.Skipped = true
		return report, nil
	}

	if s.opts.CheckQuota {
		usage, err := s.translator.Usage(ctx)
		if err != nil {
			return nil, fmt.Errorf("vérification du quota: %w", err)
		}
		if usage.CharacterLimit > 0 && int64(report.TotalChars()) > usage.Remaining() {
			return nil, fmt.Errorf("%w: %d caractères à traduire, %d restants",
				domain.ErrQuotaExceeded, report.TotalChars(), usage.Remaining())
		}
	}

	for i, p := range payloads {
		translated, err := s.translator.Translate(ctx, p.body, s.opts.SourceLang, p.lang, s.opts.Formality)
		if err != nil {
			return nil, fmt.Errorf("traduction vers %s: %w", p.lang, err)
		}

		if err := s.history.Record(report.RunID, p.lang, translated); err != nil {
			return nil, fmt.Errorf("historique de %s: %w", p.lang, err)
		}

		existing := tree.NewBranch()
		if !p.newLang {
			if existing, err = s.locales.Read(p.lang); err != nil {
				return nil, err
			}
		}

		merged := tree.Merge(existing, translated)
		orphans := tree.Orphans(merged, source, "")
		tree.RemoveByPaths(merged, orphans)
		report.Languages[i].Orphans = orphans

		if err := s.locales.Write(p.lang, merged); err != nil {
			return nil, err
		}
	}

	// Only after every language succeeded does the current source tree
	// become the new last-known-good snapshot.
	if err := s.lock.Write(s.opts.SourceLang, source); err != nil {
		return nil, fmt.Errorf("écriture du verrou: %w", err)
	}
	return report, nil
}

// Status implements input.Syncer: a dry run that reports pending work.
func (s *SyncService) Status(ctx context.Context) (*entities.RunReport, error) {
	report := s.newReport(true)
	_, payloads, err := s.plan(report)
	if err != nil {
		return nil, err
	}
	report.Skipped = allEmpty(payloads)
	return report, nil
}

// Prune implements input.Syncer: removes orphaned keys from every existing
// target file without touching the provider or the lock snapshot.
func (s *SyncService) Prune(ctx context.Context) (*entities.RunReport, error) {
	report := s.newReport(false)
	if !s.locales.Exists(s.opts.SourceLang) {
		return nil, fmt.Errorf("%w (%s.json)", domain.ErrNoSourceFile, s.opts.SourceLang)
	}
	source, err := s.locales.Read(s.opts.SourceLang)
	if err != nil {
		return nil, err
	}

	for _, lang := range s.opts.TargetLangs {
		if !s.locales.Exists(lang) {
			continue
		}
		target, err := s.locales.Read(lang)
		if err != nil {
			return nil, err
		}
		orphans := tree.Orphans(target, source, "")
		report.Languages = append(report.Languages, entities.LanguageReport{
			Lang:    lang,
			Orphans: orphans,
		})
		if len(orphans) == 0 {
			continue
		}
		tree.RemoveByPaths(target, orphans)
		if err := s.locales.Write(lang, target); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func allEmpty(payloads []payload) bool {
	for _, p := range payloads {
		if p.body.Len() > 0 {
			return false
		}
	}
	return true
}
