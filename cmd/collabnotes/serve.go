// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/rahulnayak28/CollabNotes/internal/notes"
	"github.com/rahulnayak28/CollabNotes/internal/server"
	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the note taking web UI",
	Long: `Serve starts the single-page web UI over a fresh in-memory note store.
The store starts empty on every run unless --seed points at a YAML file of
notes to load; either way nothing survives process exit.

The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)

	store, err := notes.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if seedPath, _ := cmd.Flags().GetString("seed"); seedPath != "" {
		n, err := seedStore(ctx, store, seedPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Seeded %d note(s) from %s\n", n, seedPath)
	}

	fmt.Fprintf(os.Stderr, "Serving on %s\n", cfg.Server.Addr)
	return server.New(store, cfg).ListenAndServe(ctx)
}

// seedNote is one entry in a --seed YAML file.
type seedNote struct {
	Title         string   `yaml:"title"`
	Content       string   `yaml:"content"`
	Collaborators []string `yaml:"collaborators"`
}

// seedStore loads notes from a YAML file into the store. The file is read
// once at startup; later edits to it are never reflected.
func seedStore(ctx context.Context, store *notes.Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}

	var seeds []seedNote
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	for _, s := range seeds {
		if _, err := store.Create(ctx, s.Title, s.Content, s.Collaborators); err != nil {
			return 0, fmt.Errorf("seeding note %q: %w", s.Title, err)
		}
	}
	return len(seeds), nil
}

// appConfig resolves the full configuration: flags override config file and
// environment, which override defaults.
func appConfig(cmd *cobra.Command) types.AppConfig {
	cfg := types.AppConfig{
		Server: types.ServerConfig{
			Addr:              viper.GetString("server.addr"),
			ReadHeaderTimeout: viper.GetDuration("server.read_header_timeout"),
			ShutdownTimeout:   viper.GetDuration("server.shutdown_timeout"),
		},
		Store: types.StoreConfig{
			MaxResults: viper.GetInt("store.max_results"),
		},
		Export: types.ExportConfig{
			PageWidth:  viper.GetFloat64("export.page_width"),
			PageHeight: viper.GetFloat64("export.page_height"),
			FontSize:   viper.GetFloat64("export.font_size"),
		},
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); maxResults > 0 {
		cfg.Store.MaxResults = maxResults
	}
	return cfg
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("seed", "", "YAML file of notes to load at startup")
	serveCmd.Flags().Int("max-results", 0, "maximum search results (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
