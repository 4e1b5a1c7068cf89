package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	glog "github.com/labstack/gommon/log"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cmd := "serve"
	args := []string{}
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	var err error
	switch cmd {
	case "serve":
		err = runServe()
	case "dump":
		err = runDump(os.Stdout)
	case "seed":
		err = runSeed(args, os.Stdout)
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`folio - A self-hosted portfolio site with an editable content document

Usage:
  folio [command]

Commands:
  serve          Start the web server (default)
  dump           Print the stored document as reconciled JSON
  seed [--force] Store the default document if none exists
  version        Print the folio version
  help           Show this help message

Configuration is read from the environment and an optional .env file.`)
}

func runServe() error {
	app := folio.New(folio.ConfigFromEnv(), folio.ViewFuncs{})
	app.Echo.Logger.SetLevel(glog.INFO)
	if err := app.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		app.Close()
		return err
	case <-sigCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	return nil
}

func openStore() (*folio.Store, folio.SiteConfig, error) {
	cfg := folio.ConfigFromEnv()
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/folio.db"
	}
	if cfg.DocumentID == "" {
		cfg.DocumentID = "portfolio"
	}
	store, err := folio.NewStore(cfg.DatabasePath)
	return store, cfg, err
}

func runDump(w io.Writer) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	raw, err := store.GetDocument(context.Background(), cfg.DocumentID)
	if err != nil && !errors.Is(err, folio.ErrNotFound) {
		return err
	}
	body, err := content.Marshal(content.ReconcileJSON(raw, content.Default()))
	if err != nil {
		return err
	}
	if err := content.Validate(body); err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}

func runSeed(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite an existing document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.GetDocument(ctx, cfg.DocumentID); err == nil && !*force {
		fmt.Fprintf(w, "document %q already exists; use --force to overwrite\n", cfg.DocumentID)
		return nil
	} else if err != nil && !errors.Is(err, folio.ErrNotFound) {
		return err
	}

	body, err := content.Marshal(content.Default())
	if err != nil {
		return err
	}
	if err := content.Validate(body); err != nil {
		return err
	}
	if err := store.PutDocument(ctx, cfg.DocumentID, body); err != nil {
		return err
	}
	fmt.Fprintf(w, "seeded document %q into %s\n", cfg.DocumentID, cfg.DatabasePath)
	return nil
}
