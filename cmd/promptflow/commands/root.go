package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jpl-au/promptflow"
	"github.com/jpl-au/promptflow/config"
)

const appName = "promptflow"

var writeClipboard = clipboard.WriteAll // replaced in tests

// app carries global flags and the state built from them before each
// command runs.
type app struct {
	// Global flags
	cfgFile    string
	storage    string
	outputJSON bool
	verbose    bool

	out    io.Writer
	errOut io.Writer

	cfgPath string
	cfg     *config.Config
	store   *promptflow.Store
	log     *slog.Logger
}

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

// FormatError renders err the way the CLI reports failures.
func FormatError(err error) string {
	return fmt.Sprintf("Error [%s]: %v", promptflow.Code(err), err)
}

// NewRootCommand builds the command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   appName,
		Short: "Local prompt library stored as Markdown files",
		Long: `promptflow - manage a local library of prompts.

Prompts are Markdown files with a small metadata header, kept in two
collections under the storage root:

  <root>/favorites/*.md
  <root>/templates/*.md

Examples:
  # Prepare the default root and install the starter templates
  promptflow init

  # Add a prompt from a file
  promptflow create -C favorites --title "Code review" --tag review -f review.md

  # Copy a prompt to the clipboard and count the use
  promptflow use favorites code-review --copy

  # Pipe results to another command
  promptflow search review --json | jq '.[].id'
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is <default root>/config.json)")
	root.PersistentFlags().StringVar(&a.storage, "storage", "", "storage root for this run, overrides storage.path")
	root.PersistentFlags().BoolVar(&a.outputJSON, "json", false, "output as JSON (for piping)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.initCommand(),
		a.whereCommand(),
		a.listCommand(),
		a.showCommand(),
		a.searchCommand(),
		a.createCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.useCommand(),
		a.exportCommand(),
		a.configCommand(),
	)
	return root
}

// setup loads the configuration and builds the store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	a.cfgPath = a.cfgFile
	if a.cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.cfgPath = p
	}

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.cfgPath, "storage", cfg.StoragePath())

	a.store = promptflow.New(promptflow.Config{
		Storage: a.storageConfig(),
		Logger:  a.log,
	})
	return nil
}

// persist applies change to the configuration stored at cfgPath and saves
// it, then applies it to the active config too. Environment overrides and
// --storage live only in the active config and are never written out.
func (a *app) persist(change func(*config.Config) error) error {
	stored, err := config.LoadFile(a.cfgPath)
	if err != nil {
		return err
	}
	if err := change(stored); err != nil {
		return err
	}
	if err := config.Save(a.cfgPath, stored); err != nil {
		return err
	}
	return change(a.cfg)
}

// storageConfig is the active config, or the --storage override when set.
// The override is never written back to config.json.
func (a *app) storageConfig() promptflow.StorageConfig {
	if a.storage != "" {
		return promptflow.Path(a.storage)
	}
	return a.cfg
}
