package heatindex

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"heatindex-backend/lib/fetch"
	"heatindex-backend/lib/timezone"
	"heatindex-backend/services/heatindex/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

// Service runs the whole newsletter pipeline: fetch, extract, merge,
// score, render, persist, send.
type Service struct {
	db      *sql.DB
	qry     *db.Queries
	fetcher fetch.Client
	config  Config
}

func NewService(database *sql.DB, fetcher fetch.Client, config Config) Service {
	if len(config.Sources) == 0 {
		config.Sources = DefaultSources()
	}
	return Service{
		db:      database,
		qry:     db.New(database),
		fetcher: fetcher,
		config:  config,
	}
}

type RunOptions struct {
	// render but skip SMTP delivery and state persistence
	DryRun bool
}

type RunResult struct {
	Title      string
	Html       string
	Entries    []Entry
	OutputPath string
}

// Run executes one issue end to end. A failure inside a single source
// is logged and skipped; only cross-cutting failures (state store,
// rendering) abort the run.
func (s Service) Run(ctx context.Context, opts RunOptions) (RunResult, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	lastMonthNames, err := s.qry.LatestIssueNames(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read last issue names")
		return RunResult{}, err
	}

	var all []Entry
	for _, source := range s.config.Sources {
		entries, err := s.extractOne(ctx, source)
		if err != nil {
			slog.WarnContext(ctx, "source failed, continuing without it",
				"source", source.Label, "err", err)
			continue
		}
		slog.InfoContext(ctx, "extracted source",
			"source", source.Label, "entries", len(entries))
		all = append(all, entries...)
	}

	merged := Merge(all)
	s.fillMissingImages(ctx, merged)
	ComputeHeat(merged, lastMonthNames, s.config.Scoring())

	now := timezone.Now()
	title, body, err := RenderIssue(now, merged, s.config.Sources)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to render issue")
		return RunResult{}, err
	}

	result := RunResult{Title: title, Html: body, Entries: merged}

	if s.config.OutputDir != "" {
		result.OutputPath, err = s.writeIssueFiles(now, body)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to write issue files")
			return RunResult{}, err
		}
	}

	if opts.DryRun {
		slog.InfoContext(ctx, "dry run: skipping persistence and delivery")
		return result, nil
	}

	err = s.saveIssueNames(ctx, now, merged)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist issue names")
		return RunResult{}, err
	}

	err = sendIssue(s.config.Smtp, title, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send issue")
		return RunResult{}, err
	}

	span.SetAttributes(attribute.Int("entries", len(merged)))
	return result, nil
}

func (s Service) extractOne(ctx context.Context, source SourceConfig) ([]Entry, error) {
	rawHTML, err := s.fetcher.Html(ctx, source.Url)
	if err != nil {
		return nil, err
	}
	entries := ExtractSource(ctx, source, rawHTML)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries extracted from %s", source.Url)
	}
	return entries, nil
}

// fillMissingImages applies the og:image fallback to merged entries
// that have a details page but no thumbnail.
func (s Service) fillMissingImages(ctx context.Context, entries []Entry) {
	for i := range entries {
		e := &entries[i]
		if e.ImageURL != "" || e.CanonicalURL == "" {
			continue
		}
		if !okForOgImage(e.CanonicalURL) {
			continue
		}
		e.ImageURL = s.ogImage(ctx, e.CanonicalURL)
	}
}

func (s Service) writeIssueFiles(now time.Time, body string) (string, error) {
	err := os.MkdirAll(s.config.OutputDir, 0o755)
	if err != nil {
		return "", err
	}
	issuePath := filepath.Join(
		s.config.OutputDir,
		fmt.Sprintf("issue-%s.html", timezone.IssueSlug(now)),
	)
	err = os.WriteFile(issuePath, []byte(body), 0o644)
	if err != nil {
		return "", err
	}
	// index.html always mirrors the newest issue
	err = os.WriteFile(filepath.Join(s.config.OutputDir, "index.html"), []byte(body), 0o644)
	if err != nil {
		return "", err
	}
	return issuePath, nil
}

func (s Service) saveIssueNames(ctx context.Context, now time.Time, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	issueID, err := txqry.CreateIssue(ctx, db.CreateIssueParams{
		Period:    timezone.MonthLabel(now),
		Createdat: now.Unix(),
	})
	if err != nil {
		return err
	}
	for _, e := range entries {
		err = txqry.CreateIssueName(ctx, db.CreateIssueNameParams{
			IssueID: issueID,
			Name:    e.Name,
		})
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
