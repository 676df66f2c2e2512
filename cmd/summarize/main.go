// Package main provides a CLI command for summarizing a document without
// running the server.
// Usage: summarize [--file path] [--length short|medium|long|custom]
// [--mode extractive|abstractive] [--engine local|external] [--percent N]
// [--output text|json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"smart-summarizer/internal/engine"
	"smart-summarizer/internal/infra/summarizer"
	"smart-summarizer/internal/observability/logging"
)

func main() {
	var (
		file         string
		length       string
		mode         string
		engineKind   string
		percent      int
		outputFormat string
	)

	flag.StringVar(&file, "file", "", "Input file (default: read stdin)")
	flag.StringVar(&length, "length", "medium", "Summary length: short, medium, long or custom")
	flag.StringVar(&mode, "mode", "extractive", "Summarization mode: extractive or abstractive")
	flag.StringVar(&engineKind, "engine", "local", "Engine: local or external")
	flag.IntVar(&percent, "percent", 0, "Target percentage for --length custom")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	logger := logging.NewTextLogger()
	slog.SetDefault(logger)

	input, err := readInput(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(input) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input text (pass --file or pipe to stdin)")
		os.Exit(1)
	}

	eng := engine.New(
		engine.WithExternalEngine(summarizer.NewProvider(summarizer.LoadConfig())),
		engine.WithLogger(logger),
	)

	result := eng.Summarize(context.Background(), engine.Request{
		Text:             string(input),
		Length:           engine.ParseLength(length),
		Mode:             engine.ParseMode(mode),
		Engine:           engine.ParseKind(engineKind),
		CustomPercentage: percent,
	})

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: encode result: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Println(result.Summary)
		fmt.Fprintf(os.Stderr, "\n%d of %d words (%.1f%%), compression %.1f%%, type %s\n",
			result.SummaryWordCount, result.InputWordCount,
			result.ActualPercentage, result.CompressionRatio, result.SummaryType)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	// #nosec G304 -- path comes from the CLI user themselves
	return os.ReadFile(file)
}
