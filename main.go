// Package main implements the main entry point for the Chip-8 disassembler
package main

import (
	"context"
	"errors"
	"os"

	"github.com/Vertridge/Chip8Emulator/internal/cli"
	"github.com/Vertridge/Chip8Emulator/internal/config"
	"github.com/Vertridge/Chip8Emulator/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, disasmOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if len(files) == 0 {
		logger.Warn("No files to process", log.String("pattern", opts.Batch))
		return
	}

	if err := fileprocessor.ProcessFiles(ctx, logger, opts, disasmOptions, files); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}
