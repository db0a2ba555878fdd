// Command validate-orders runs orders from a file or stdin through the same
// validation and currency formatting as the HTTP service.
//
// Accepted orders are printed to stdout as JSON lines; rejections go to
// stderr. The exit status is 1 when any order was rejected.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"orderservice/internal/batch"
	"orderservice/internal/formatter"
	"orderservice/internal/service"
	"orderservice/internal/validator"
)

func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	verbose := flag.Bool("v", false, "log each processed order to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
			os.Exit(2)
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := service.NewOrderService(formatter.NewDefaultRegistry(), logger.Sugar())
	p := batch.NewProcessor(validator.NewDefaultRecordValidator(), svc)

	format := batch.InputFormat(*formatStr)

	var (
		summary batch.Summary
		err     error
	)
	if *inputPath == "" {
		// stdin has no extension to go by
		if format == batch.FormatAuto {
			format = batch.FormatJSONL
		}
		summary, err = p.Process(ctx, os.Stdin, format, os.Stdout, os.Stderr)
	} else {
		summary, err = p.ProcessFile(ctx, *inputPath, format, os.Stdout, os.Stderr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	if summary.Rejected > 0 {
		fmt.Fprintf(os.Stderr, "validation failed (%s)\n", summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
