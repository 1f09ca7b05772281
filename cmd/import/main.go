// Command import loads issues from a CSV file through the same
// validate-then-commit pipeline as POST /issues/import and prints the
// summary as JSON to stdout.
//
// Flags:
//
//	--file     path to the CSV document (required; "-" reads stdin)
//	--timeout  overall deadline (default 5m)
//
// Exit codes: 0 = all rows created, 1 = error, 2 = rows rejected.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/issuetracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker-backend/internal/app"
	"github.com/heartmarshall/issuetracker-backend/internal/config"
	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

type summary struct {
	TotalRows int            `json:"total_rows"`
	Created   int            `json:"created"`
	Failed    int            `json:"failed"`
	Errors    []rowErrorJSON `json:"errors"`
}

type rowErrorJSON struct {
	RowNumber int    `json:"row_number"`
	Reason    string `json:"reason"`
}

func main() {
	path := flag.String("file", "", "path to the CSV file, or - for stdin")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	src, closeSrc, err := openSource(*path)
	if err != nil {
		logger.Error("open csv", slog.String("path", *path), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeSrc()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(pool, cfg.Issues, logger)

	result, err := svcs.Importer.Import(ctx, src)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toSummary(result)); err != nil {
		logger.Error("write summary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !result.Succeeded() {
		os.Exit(2)
	}
}

func openSource(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func toSummary(r *domain.ImportResult) summary {
	errs := make([]rowErrorJSON, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, rowErrorJSON{RowNumber: e.RowNumber, Reason: e.Reason})
	}
	return summary{TotalRows: r.TotalRows, Created: r.Created, Failed: r.Failed, Errors: errs}
}
