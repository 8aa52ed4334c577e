package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/normscope/normscope/internal/export"
	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
	"github.com/normscope/normscope/pkg/session"
	"github.com/normscope/normscope/pkg/surface"
)

type scoreOpts struct {
	sessionPath string
	raw         []string
	examinee    string
	examiner    string
	sex         string
	location    string
	birth       string
	assessed    string
	outputFmt   string
	exportDest  string
	noColor     bool
}

func newScoreCmd(a *app) *cobra.Command {
	var opts scoreOpts

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an evaluation session",
		Long: `Reads a session file and/or flags, converts raw scores through the norm
tables, and renders the report. Flags override values from the session file.`,
		Example: `  normscope score --session lucia.yaml
  normscope score --examinee "Lucia Ferrer" --examiner "Dr. Ortega" \
    --birth 2020-10-01 --assessed 2025-09-15 --raw block_design=20 --raw information=14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.sessionPath, "session", "s", "", "Session file (YAML or JSON)")
	f.StringArrayVar(&opts.raw, "raw", nil, "Raw score as subtest=value (repeatable)")
	f.StringVar(&opts.examinee, "examinee", "", "Examinee name")
	f.StringVar(&opts.examiner, "examiner", "", "Examiner name")
	f.StringVar(&opts.sex, "sex", "", "Examinee sex")
	f.StringVar(&opts.location, "location", "", "Assessment location")
	f.StringVar(&opts.birth, "birth", "", "Birth date (YYYY-MM-DD)")
	f.StringVar(&opts.assessed, "assessed", "", "Assessment date (YYYY-MM-DD)")
	f.StringVarP(&opts.outputFmt, "output", "o", "", "Output format: text, markdown or json (default from config)")
	f.StringVar(&opts.exportDest, "export", "", "Export destination: directory, s3://bucket/prefix or gs://bucket/prefix")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runScore(cmd *cobra.Command, a *app, opts scoreOpts) error {
	s := &session.Session{}
	if opts.sessionPath != "" {
		loaded, err := session.Load(opts.sessionPath)
		if err != nil {
			return err
		}
		s = loaded
	}
	if err := applyFlags(s, opts); err != nil {
		return err
	}

	engine := scoring.NewEngine(nil)
	in, err := s.Input(engine.Battery())
	if err != nil {
		return err
	}

	doc, err := report.Assembler{}.Build(engine, in)
	if err != nil {
		return err
	}
	a.log.Debug("scored session",
		zap.String("report_id", doc.ID),
		zap.String("summary", doc.Result.Summary()))

	renderer, err := surface.ForFormat(firstNonEmpty(opts.outputFmt, a.cfg.Output.Format))
	if err != nil {
		return err
	}
	if t, ok := renderer.(*surface.TerminalRenderer); ok {
		t.NoColor = opts.noColor || !a.cfg.Output.Color
	}
	if err := renderer.Render(cmd.OutOrStdout(), doc); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	dest := firstNonEmpty(opts.exportDest, a.cfg.Export.Destination)
	if dest == "" {
		return nil
	}
	return exportDocument(cmd.Context(), a, dest, doc)
}

func exportDocument(ctx context.Context, a *app, dest string, doc *report.Document) error {
	s3 := a.cfg.Export.S3
	sink, err := export.Open(ctx, dest, export.S3Config{
		Region:    s3.Region,
		Endpoint:  s3.Endpoint,
		AccessKey: s3.AccessKey,
		SecretKey: s3.SecretKey,
	})
	if err != nil {
		return err
	}
	locs, err := export.Export(ctx, sink, doc)
	if err != nil {
		return err
	}
	for _, l := range locs {
		a.log.Info("exported report", zap.String("report_id", doc.ID), zap.String("location", l))
	}
	return nil
}

// applyFlags overlays command-line values on the session.
func applyFlags(s *session.Session, opts scoreOpts) error {
	overrides := []struct {
		dst *string
		v   string
	}{
		{&s.Name, opts.examinee},
		{&s.Examiner, opts.examiner},
		{&s.Sex, opts.sex},
		{&s.Location, opts.location},
		{&s.BirthDate, opts.birth},
		{&s.AssessmentDate, opts.assessed},
	}
	for _, o := range overrides {
		if o.v != "" {
			*o.dst = o.v
		}
	}

	for _, kv := range opts.raw {
		name, value, err := parseRaw(kv)
		if err != nil {
			return err
		}
		s.SetRaw(name, value)
	}
	return nil
}

func parseRaw(kv string) (string, int, error) {
	name, value, ok := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid --raw %q: want subtest=value", kv)
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", 0, fmt.Errorf("invalid --raw %q: %w", kv, err)
	}
	return name, n, nil
}
