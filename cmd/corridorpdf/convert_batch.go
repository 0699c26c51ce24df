package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	corridorpdf "github.com/alnah/go-corridorpdf"
	"github.com/alnah/go-corridorpdf/internal/config"
	"github.com/alnah/go-corridorpdf/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrOutputDir    = errors.New("failed to create output directory")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Pages      int
	RequestID  string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Converter creation failed, mark the jobs this worker takes as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	input := buildInput(params, string(content), f.InputPath)
	if params.datedName && !f.Explicit {
		result.OutputPath = datedOutputPath(f.OutputPath, corridorpdf.Filename(input.Title, params.date, "pdf"))
	}

	if err := os.MkdirAll(filepath.Dir(result.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrOutputDir, err))
	}

	res, err := conv.Convert(ctx, input)
	if err != nil {
		return fail(err)
	}
	result.Pages = res.Pages
	result.RequestID = res.RequestID

	if params.html {
		if err := fileutil.WriteFileAtomic(htmlOutputPath(result.OutputPath), res.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
	}

	if err := fileutil.WriteFileAtomic(result.OutputPath, res.PDF, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWritePDF, err))
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports every conversion and returns the failure count.
// Created files go to stdout unless quiet; failures go to stderr. Timings
// are logged at debug level.
func printResults(results []ConversionResult, quiet bool, cfg *config.Config, log *zap.Logger, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, errorHint(r.Err, cfg, ""))
			continue
		}

		log.Debug("converted file",
			zap.String("input", r.InputPath),
			zap.String("output", r.OutputPath),
			zap.Int("pages", r.Pages),
			zap.String("request_id", r.RequestID),
			zap.Duration("elapsed", r.Duration.Round(time.Millisecond)))

		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// batchError reports failed conversions. It unwraps to the first failure
// so that the exit code reflects its cause.
type batchError struct {
	failed int
	total  int
	first  error
}

// newBatchError summarizes the failures in results.
func newBatchError(results []ConversionResult) *batchError {
	e := &batchError{total: len(results)}
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if e.first == nil {
			e.first = r.Err
		}
		e.failed++
	}
	return e
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%v: %d of %d file(s)", ErrFailedConvert, e.failed, e.total)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrFailedConvert, e.first}
}
