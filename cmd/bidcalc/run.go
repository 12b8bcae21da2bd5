package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gbistila/bidupgradestest/internal/logger"
	"github.com/gbistila/bidupgradestest/pkg/present"
	"github.com/gbistila/bidupgradestest/pkg/spec"
	"github.com/gbistila/bidupgradestest/pkg/validation"
)

type quoteOptions struct {
	area, thickness string
	handoff         bool
	json            bool
	copy            bool
}

// clipboard is swapped out in tests.
var clipboard present.Clipboard = present.SystemClipboard{}

// outputRenderer prints whatever the adapter hands it.
type outputRenderer struct {
	w      io.Writer
	asJSON bool
	title  string
	err    error
}

func (r *outputRenderer) Render(v present.View) {
	if r.asJSON {
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		r.err = enc.Encode(v)
		return
	}
	printBid(r.w, r.title, v)
}

func (r *outputRenderer) Hide() {}

// loadAndValidate loads the job file and runs schema validation.
func loadAndValidate(projectPath string) (*spec.JobSpec, *validation.Report, error) {
	jobSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading job: %w", err)
	}
	return jobSpec, validation.ValidateJob(jobSpec), nil
}

func runQuote(w io.Writer, p *present.Presenter, opts quoteOptions) error {
	r := &outputRenderer{w: w, asJSON: opts.json}
	a := present.NewAdapter(p, r)

	report := a.Update(present.Request{
		Area:        opts.area,
		Thickness:   opts.thickness,
		ShowHandoff: opts.handoff || opts.copy,
	})
	if !report.Valid {
		printValidationReport(w, report)
		return report.Err()
	}
	if r.err != nil {
		return r.err
	}
	return finish(w, a, opts)
}

func runJob(w io.Writer, p *present.Presenter, projectPath string, opts quoteOptions) error {
	jobSpec, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("job has validation errors; fix before pricing: %w", report.Err())
	}

	r := &outputRenderer{w: w, asJSON: opts.json, title: jobSpec.Job.Name}
	a := present.NewAdapter(p, r)
	a.UpdateInput(jobSpec.Slab.Input(), present.Options{ShowHandoff: jobSpec.Handoff || opts.copy})
	if r.err != nil {
		return r.err
	}

	logger.L().Info("job.priced",
		zap.String("job", jobSpec.Job.Name),
		zap.String("path", projectPath))
	return finish(w, a, opts)
}

func runValidate(w io.Writer, projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	printValidationReport(w, report)
	return report.Err()
}

func finish(w io.Writer, a *present.Adapter, opts quoteOptions) error {
	if !opts.copy {
		return nil
	}
	if err := a.CopyHandoff(clipboard); err != nil {
		return fmt.Errorf("copying handoff: %w", err)
	}
	if !opts.json {
		fmt.Fprintln(w, present.CopiedMessage)
	}
	return nil
}
