// ABOUTME: Entry point for the crmseed synthetic CRM data generator.
// ABOUTME: Wires config, logging, generation stages, SQLite export, and the read-only API into CLI commands.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2389/crmseed/internal/api"
	"github.com/2389/crmseed/internal/config"
	"github.com/2389/crmseed/internal/dataset"
	"github.com/2389/crmseed/internal/model"
	"github.com/2389/crmseed/internal/seed"
	"github.com/2389/crmseed/internal/store"
)

// app holds resolved settings shared by every command.
type app struct {
	cfg    *config.Config
	outDir string
	seed   int64
	dbPath string
	port   int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "crmseed",
		Short: "Generate a synthetic CRM dataset",
		Long: `crmseed generates fake but internally consistent CRM data for development and testing.

Stages:
  crmseed accounts     # 50 accounts with contacts and notes -> accounts.json
  crmseed prospects    # prospects and activities for every account -> prospects.json, activities.json
  crmseed generate     # both stages back to back

Extras:
  crmseed export       # load the JSON files into SQLite
  crmseed search       # find exported accounts by company name
  crmseed serve        # read-only HTTP API over the JSON files

Environment Variables:
  CRMSEED_OUTPUT_DIR   Directory for the JSON files (default: .)
  CRMSEED_SEED         Random seed, 0 for time-based (default: 0)
  CRMSEED_AI_ENABLED   Rewrite account notes with OpenAI (true/false)
  OPENAI_API_KEY       Required when AI rewriting is enabled`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.outDir, "out", "o", ".", "Directory for the JSON files")
	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Random seed (0 uses the clock)")

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Generate accounts.json",
		Long: `Generate 50 accounts, each with 1-3 contacts and 0-5 notes, and write accounts.json.

The file is overwritten on every run. The first contact of each account is its primary contact.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(cmd.Context(), a.generator(), a.outDir, cmd.OutOrStdout())
		},
	}

	prospectsCmd := &cobra.Command{
		Use:   "prospects",
		Short: "Generate prospects.json and activities.json from accounts.json",
		Long: `Read accounts.json and generate 1-3 prospects per account and 3-7 activities per prospect.

Both output files are replaced together: if either write fails, neither is changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := dataset.ReadAccounts(filepath.Join(a.outDir, dataset.AccountsFile))
			if err != nil {
				return err
			}
			return runProspects(cmd.Context(), a.generator(), a.outDir, accounts, cmd.OutOrStdout())
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the accounts and prospects stages back to back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.generator()
			if err := runAccounts(cmd.Context(), g, a.outDir, cmd.OutOrStdout()); err != nil {
				return err
			}
			// Stage two only sees what stage one wrote.
			accounts, err := dataset.ReadAccounts(filepath.Join(a.outDir, dataset.AccountsFile))
			if err != nil {
				return err
			}
			return runProspects(cmd.Context(), g, a.outDir, accounts, cmd.OutOrStdout())
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Load the JSON files into a fresh SQLite database",
		Long: `Load accounts.json, prospects.json and activities.json into SQLite.

The database file is recreated on every run. Records are inserted in one
transaction with foreign keys enforced, so a broken dataset leaves an empty database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), a.outDir, a.dbPath, cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVarP(&a.dbPath, "db", "d", "crmseed.db", "Database path")

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find exported accounts whose company name contains a query",
		Long: `Search the SQLite database written by export for accounts by company name.

Matching ignores case, and % and _ in the query match literally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), a.dbPath, args[0], cmd.OutOrStdout())
		},
	}
	searchCmd.Flags().StringVarP(&a.dbPath, "db", "d", "crmseed.db", "Database path")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated dataset over a read-only HTTP API",
		Long: `Start a read-only JSON API over the generated files.

Routes:
  GET /healthz
  GET /api/accounts?industry=&q=
  GET /api/accounts/recent
  GET /api/accounts/{id}
  GET /api/accounts/{id}/notes
  GET /api/accounts/{id}/prospects
  GET /api/accounts/{id}/activities
  GET /api/prospects/{id}
  GET /api/prospects/{id}/activities`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a.outDir, a.port)
		},
	}
	serveCmd.Flags().IntVarP(&a.port, "port", "p", 9000, "Port to listen on")

	rootCmd.AddCommand(accountsCmd, prospectsCmd, generateCmd, exportCmd, searchCmd, serveCmd)
	return rootCmd
}

// setup loads configuration, installs the logger, and fills every flag the
// user did not set from the config.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("out") {
		a.outDir = cfg.Output.Dir
	}
	if !flags.Changed("seed") {
		a.seed = cfg.Seed
	}
	if !flags.Changed("db") {
		a.dbPath = cfg.Store.Path
	}
	if !flags.Changed("port") {
		a.port = cfg.Server.Port
	}

	if a.outDir, err = validateOutputDir(a.outDir); err != nil {
		return err
	}
	if flags.Lookup("db") != nil {
		if a.dbPath, err = validateAndCleanPath(a.dbPath, "database"); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) generator() *seed.Generator {
	opts := []seed.Option{
		seed.WithSource(seed.NewSource(a.seed)),
		seed.WithLogger(zap.L()),
	}

	switch {
	case a.cfg.AI.UseAI():
		zap.L().Info("rewriting notes with OpenAI", zap.String("model", a.cfg.AI.Model))
		opts = append(opts, seed.WithNoteWriter(seed.NewOpenAIWriter(a.cfg.AI.APIKey, a.cfg.AI.Model)))
	case a.cfg.AI.Enabled:
		zap.L().Warn("AI notes enabled but no API key set, using templates")
	}
	return seed.NewGenerator(opts...)
}

func runAccounts(ctx context.Context, g *seed.Generator, dir string, out io.Writer) error {
	accounts, err := g.Accounts(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, dataset.AccountsFile)
	if err := dataset.WriteJSON(path, accounts); err != nil {
		return err
	}

	zap.L().Info("wrote accounts", zap.Int("count", len(accounts)), zap.String("path", path))
	fmt.Fprintf(out, "Generated %d accounts and saved to %s\n", len(accounts), path)
	return nil
}

func runProspects(ctx context.Context, g *seed.Generator, dir string, accounts []model.Account, out io.Writer) error {
	prospects, activities, err := g.Prospects(ctx, accounts)
	if err != nil {
		return err
	}

	prospectsPath := filepath.Join(dir, dataset.ProspectsFile)
	activitiesPath := filepath.Join(dir, dataset.ActivitiesFile)
	err = dataset.WriteAll(
		dataset.File{Path: prospectsPath, Value: prospects},
		dataset.File{Path: activitiesPath, Value: activities},
	)
	if err != nil {
		return err
	}

	zap.L().Info("wrote prospects and activities",
		zap.Int("prospects", len(prospects)), zap.Int("activities", len(activities)),
		zap.String("dir", dir))
	fmt.Fprintf(out, "Generated %d prospects and %d activities\n", len(prospects), len(activities))
	fmt.Fprintf(out, "Saved to %s and %s\n", prospectsPath, activitiesPath)
	return nil
}

// loadValidated reads all three files and refuses datasets with broken links.
func loadValidated(dir string) (*model.Dataset, error) {
	ds, err := dataset.Load(dir)
	if err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, eris.Wrap(err, "dataset failed validation")
	}
	return ds, nil
}

func runExport(ctx context.Context, dir, dbPath string, out io.Writer) error {
	ds, err := loadValidated(dir)
	if err != nil {
		return err
	}

	// Remove existing database and its WAL files - ignore if they don't exist
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return eris.Wrapf(err, "failed to remove existing database file %s", p)
		}
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Import(ctx, ds); err != nil {
		return err
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	statuses, err := s.ProspectStatusCounts(ctx)
	if err != nil {
		return err
	}

	zap.L().Info("exported dataset", zap.String("db", dbPath), zap.Any("counts", counts))
	fmt.Fprintf(out, "Exported to %s:\n", dbPath)
	for _, table := range store.Tables {
		fmt.Fprintf(out, "  %-10s %d\n", table, counts[table])
	}
	fmt.Fprintln(out, "Prospects by status:")
	for _, status := range []string{
		model.StatusLead, model.StatusQualifiedLead, model.StatusOpportunity, model.StatusProposal,
		model.StatusNegotiation, model.StatusClosedWon, model.StatusClosedLost, model.StatusOnHold,
	} {
		if n := statuses[status]; n > 0 {
			fmt.Fprintf(out, "  %-14s %d\n", status, n)
		}
	}
	return nil
}

func runSearch(ctx context.Context, dbPath, query string, out io.Writer) error {
	if strings.TrimSpace(query) == "" {
		return eris.New("search query cannot be empty")
	}
	if _, err := os.Stat(dbPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return eris.Errorf("database %s not found, run 'crmseed export' first", dbPath)
		}
		return eris.Wrapf(err, "failed to stat database %s", dbPath)
	}

	s, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	matches, err := s.SearchAccounts(ctx, query)
	if err != nil {
		return err
	}

	zap.L().Debug("searched accounts", zap.String("query", query), zap.Int("matches", len(matches)))
	if len(matches) == 0 {
		fmt.Fprintf(out, "No accounts match %q\n", query)
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(out, "%s  %-40s %-15s %s\n", m.AccountID, m.CompanyName, m.Industry, m.PrimaryContact)
	}
	fmt.Fprintf(out, "%d account(s)\n", len(matches))
	return nil
}

func newServer(dir string) (http.Handler, error) {
	ds, err := loadValidated(dir)
	if err != nil {
		return nil, err
	}
	return api.NewRouter(ds, zap.L()), nil
}

func runServe(ctx context.Context, dir string, port int) error {
	handler, err := newServer(dir)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("crmseed API listening", zap.String("addr", srv.Addr), zap.String("data", dir))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return eris.Wrap(err, "server failed")
	case <-ctx.Done():
		zap.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// validateOutputDir cleans the output directory. Unlike file paths, the
// current directory is a valid target.
func validateOutputDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", eris.New("output directory cannot be empty")
	}
	clean := filepath.Clean(strings.TrimSpace(dir))
	if clean == "." {
		return clean, nil
	}
	return validateAndCleanPath(clean, "output directory")
}

// validateAndCleanPath validates and cleans a file or directory path.
// Handles Unix/Linux, macOS, and Windows paths (including UNC and drive letters).
func validateAndCleanPath(path, what string) (string, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return "", eris.Errorf("%s path cannot be empty, '.', or '/'", what)
	}
	cleanPath = filepath.Clean(cleanPath)

	// Reject root-like paths
	if cleanPath == "." || cleanPath == "/" {
		return "", eris.Errorf("%s path cannot be empty, '.', or '/'", what)
	}

	// Windows: reject bare drive letters (e.g., "C:", "D:")
	if runtime.GOOS == "windows" && len(cleanPath) == 2 && cleanPath[1] == ':' {
		return "", eris.Errorf("%s path cannot be a bare drive letter", what)
	}

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return "", eris.Errorf("%s path cannot contain '..'", what)
	}

	// Reject known problematic patterns
	badPatterns := []string{
		".git",
		".svn",
		"node_modules",
		".env",
		"credentials",
		"secret",
	}
	lowerPath := strings.ToLower(cleanPath)
	for _, pattern := range badPatterns {
		if strings.Contains(lowerPath, pattern) {
			return "", eris.Errorf("%s path cannot contain '%s' directory", what, pattern)
		}
	}

	return cleanPath, nil
}
