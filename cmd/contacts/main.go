package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contactbook/internal/client/cli"
	"github.com/dmitrijs2005/contactbook/internal/client/config"
	"github.com/dmitrijs2005/contactbook/internal/client/database"
	"github.com/dmitrijs2005/contactbook/internal/client/repositories/contacts"
	"github.com/dmitrijs2005/contactbook/internal/client/repositories/kv"
	"github.com/dmitrijs2005/contactbook/internal/client/services"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/filex"
	"github.com/dmitrijs2005/contactbook/internal/flagx"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		log.New(errOut, "", 0).Printf("%v", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel, errOut)
	if err != nil {
		log.New(errOut, "", 0).Printf("%v", err)
		return 2
	}

	slot, closeSlot, err := openSlot(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "failed to open storage", "backend", cfg.Backend, "error", err)
		return 1
	}
	defer closeSlot()

	repo := contacts.NewKVRepository(slot, cfg.StorageKey, logger)
	svc := services.NewContactService(repo, logger)

	cmd := cli.NewRootCommand(svc, logger)
	cmd.SetArgs(flagx.StripArgs(args, config.FlagNames))
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Validation failures were already shown next to the form.
		if !errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(errOut, "Error:", err)
		}
		return 1
	}
	return 0
}

// openSlot returns the key/value slot selected by cfg.Backend and a func
// releasing it.
func openSlot(ctx context.Context, cfg *config.Config) (kv.Repository, func(), error) {
	if cfg.Backend == config.BackendMemory {
		return kv.NewMemoryRepository(), func() {}, nil
	}

	if _, err := filex.EnsureParentDir(cfg.DataPath); err != nil {
		return nil, nil, err
	}
	db, err := database.Open(ctx, cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	return kv.NewSQLiteRepository(db), func() { _ = db.Close() }, nil
}
