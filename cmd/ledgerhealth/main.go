// ledgerhealth opens the batch ledger and pings it, for checking a DSN
// before a run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	repo "github.com/invoice-kit/invoice-archiver/internal/repository"
)

func main() {
	dsn := flag.String("dsn", "", "ledger DSN (overrides LEDGER_DSN)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := common.LoadConfig()
	if *dsn != "" {
		cfg.Ledger.DSN = *dsn
	}

	ctx := context.Background()
	db, err := repo.Open(ctx, repo.Config{DSN: cfg.Ledger.DSN, DialTimeout: cfg.Ledger.DialTimeout}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledger unreachable: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(db, logger)

	if err := repo.HealthCheck(ctx, db, 3*time.Second, logger); err != nil {
		fmt.Fprintf(os.Stderr, "ledger ping failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ledger ok")
}
