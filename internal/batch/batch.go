// Package batch runs the order pipeline over files of orders instead of HTTP
// requests. Input is either a JSON document (one order or an array of orders)
// or JSON Lines with one order per line.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orderservice/internal/order"
	"orderservice/internal/service"
)

// InputFormat selects how the input is split into orders.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ErrUnsupportedFormat is returned for an unknown InputFormat.
var ErrUnsupportedFormat = errors.New("unsupported input format")

const maxLineBytes = 10 * 1024 * 1024

// Summary counts the outcome of a batch run.
type Summary struct {
	Accepted int
	Rejected int
}

// Total returns the number of orders read.
func (s Summary) Total() int { return s.Accepted + s.Rejected }

func (s Summary) String() string {
	return fmt.Sprintf("%d accepted / %d rejected", s.Accepted, s.Rejected)
}

// Processor feeds orders through shape checks, record validation and
// currency formatting, the same pipeline the HTTP handler uses.
type Processor struct {
	validator service.Validator
	service   service.OrderServiceInterface
}

// NewProcessor creates a Processor.
func NewProcessor(v service.Validator, svc service.OrderServiceInterface) *Processor {
	return &Processor{validator: v, service: svc}
}

// ProcessOne runs a single raw JSON order through the pipeline.
func (p *Processor) ProcessOne(raw []byte) (order.Order, error) {
	ord, err := order.Decode(raw)
	if err != nil {
		return order.Order{}, err
	}
	if _, err := p.validator.Validate(ord.Record()); err != nil {
		return order.Order{}, err
	}
	return p.service.Process(ord)
}

// ProcessFile opens path and processes it in the given format. FormatAuto
// picks JSONL for a .jsonl extension and JSON otherwise.
func (p *Processor) ProcessFile(ctx context.Context, path string, format InputFormat, out, errOut io.Writer) (Summary, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return p.Process(ctx, f, format, out, errOut)
}

// DetectFormat guesses the input format from a file extension.
func DetectFormat(path string) InputFormat {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// Process reads orders from r. Each accepted order is written to out as one
// line of compact JSON; each rejected order is reported on errOut prefixed
// with its position. A rejected order does not stop the run. The returned
// error covers I/O failures, context cancellation and unparseable JSON
// documents only.
func (p *Processor) Process(ctx context.Context, r io.Reader, format InputFormat, out, errOut io.Writer) (Summary, error) {
	switch format {
	case FormatJSONL:
		return p.processLines(ctx, r, out, errOut)
	case FormatJSON:
		return p.processDocument(ctx, r, out, errOut)
	default:
		return Summary{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (p *Processor) processLines(ctx context.Context, r io.Reader, out, errOut io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := p.emit(line, fmt.Sprintf("line %d", lineNo), &sum, out, errOut); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}

func (p *Processor) processDocument(ctx context.Context, r io.Reader, out, errOut io.Writer) (Summary, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Summary{}, nil
	}

	if raw[0] != '[' {
		var sum Summary
		err := p.emit(raw, "order 1", &sum, out, errOut)
		return sum, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return Summary{}, fmt.Errorf("parse json array: %w", err)
	}

	var sum Summary
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if err := p.emit(item, fmt.Sprintf("order %d", i+1), &sum, out, errOut); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// emit processes one order and writes its outcome. Only write failures are
// returned.
func (p *Processor) emit(raw []byte, pos string, sum *Summary, out, errOut io.Writer) error {
	ord, err := p.ProcessOne(raw)
	if err != nil {
		sum.Rejected++
		if _, werr := fmt.Fprintf(errOut, "%s: %v\n", pos, err); werr != nil {
			return fmt.Errorf("write error report: %w", werr)
		}
		return nil
	}

	encoded, err := json.Marshal(ord)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	encoded = append(encoded, '\n')
	if _, err := out.Write(encoded); err != nil {
		return fmt.Errorf("write order: %w", err)
	}
	sum.Accepted++
	return nil
}
