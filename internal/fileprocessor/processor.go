// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/Vertridge/Chip8Emulator/internal/options"
	"github.com/Vertridge/Chip8Emulator/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// listingExtension is the file extension of generated listing files.
const listingExtension = ".lst"

// ErrProcessingFailed is returned when at least one file could not be processed.
var ErrProcessingFailed = errors.New("processing failed")

// ProcessFile handles the complete file processing workflow. An output file
// is removed again if the processing fails.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) (err error) {

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if file, ok := writer.(*os.File); ok && file != os.Stdout {
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
			}
			if err != nil {
				if removeErr := os.Remove(opts.Output); removeErr != nil {
					logger.Warn("Removing incomplete output file failed",
						log.String("file", opts.Output),
						log.Err(removeErr))
				}
			}
		}()
	}

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, disasmOptions, writer); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}
	return nil
}

// ProcessFiles processes all files concurrently. In batch mode every file is
// written to a generated output file next to it. Failures of single files are
// logged and do not stop the processing of the other files, a cancellation
// of the context does.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler, files []string) error {

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var failed atomic.Int32
	for _, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		if opts.Batch != "" {
			fileOpts.Output = GenerateOutputFilename(file)
		}

		g.Go(func() error {
			err := ProcessFile(ctx, logger, fileOpts, disasmOptions)
			if err == nil {
				return nil
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Disassembling failed",
				log.String("file", file),
				log.Err(err))
			failed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrProcessingFailed, n, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + listingExtension
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8emu - Chip-8 disassembler",
		log.String("version", buildinfo.Version(version, commit, date)))
}
