package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/pdfmd/internal/extractor"
	"github.com/dgallion1/pdfmd/internal/markdown"
)

// Worker processes a single conversion job: extract, then convert.
type Worker struct {
	conv              *markdown.Converter
	stats             *ConvertStats
	log               *slog.Logger
	fallbackPdftotext bool
}

func NewWorker(conv *markdown.Converter, stats *ConvertStats, log *slog.Logger, fallbackPdftotext bool) *Worker {
	return &Worker{
		conv:              conv,
		stats:             stats,
		log:               log,
		fallbackPdftotext: fallbackPdftotext,
	}
}

// Process runs the full conversion for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	job.SetStatus(StatusExtracting, "extracting text")
	ex, err := extractor.ForFile(job.Filename)
	if err != nil {
		w.fail(job, log, "extracting", err)
		return
	}
	if pe, ok := ex.(*extractor.PDFExtractor); ok {
		pe.FallbackPdftotext = w.fallbackPdftotext
	}

	src, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		w.fail(job, log, "extracting", fmt.Errorf("extract: %w", err))
		return
	}

	title := job.Title
	if title == "" {
		title = src.Title
	}

	job.SetStatus(StatusConverting, "converting to markdown")
	var doc string
	if src.Positioned() {
		doc, err = w.conv.ConvertPages(src.Pages, title)
		if err != nil {
			w.fail(job, log, "converting", fmt.Errorf("convert: %w", err))
			return
		}
	} else {
		doc = w.conv.Convert(src.Text, title)
	}

	job.SetResult(doc)
	job.SetStatus(StatusCompleted, "done")
	w.stats.Record(time.Since(start))
	log.Info("conversion complete",
		"positioned", src.Positioned(),
		"bytes_out", len(doc),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (w *Worker) fail(job *Job, log *slog.Logger, phase string, err error) {
	log.Error("conversion failed", "phase", phase, "error", err)
	job.AddError(err.Error())
	job.SetStatus(StatusFailed, phase)
	w.stats.RecordFailure()
}
