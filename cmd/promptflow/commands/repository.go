package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptflow"
	"github.com/jpl-au/promptflow/config"
)

func (a *app) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Prepare a storage root and seed the starter templates",
		Long: `Create the favorites and templates directories under path (or the
default root), install the starter templates that are missing, write a
config.json into the root if it has none, and point the active
configuration at the root.

Existing files are never overwritten. Starters that were edited are
reported as "edited" and left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.storage
			if len(args) == 1 {
				path = args[0]
			}
			s := promptflow.New(promptflow.Config{Storage: promptflow.Path(path), Logger: a.log})
			res, err := s.Init()
			if err != nil {
				return err
			}

			// config.json inside the new root, only when absent
			rootCfg := filepath.Join(res.Root, config.FileName)
			if _, err := os.Stat(rootCfg); errors.Is(err, fs.ErrNotExist) {
				cfg := config.Default()
				if path != "" {
					cfg.Storage.Path = res.Root
				}
				if err := config.Save(rootCfg, cfg); err != nil {
					return err
				}
				a.log.Debug("wrote config", "path", rootCfg)
			}

			err = a.persist(func(c *config.Config) error {
				c.Storage.Path = ""
				if path != "" {
					c.Storage.Path = res.Root
				}
				return nil
			})
			if err != nil {
				return err
			}

			if a.outputJSON {
				return a.outputResult(res)
			}
			a.printSuccess("repository ready at %s", res.Root)
			for _, seed := range res.Seeds {
				fmt.Fprintf(a.out, "  %-40s %s\n", seed.ID, seed.Status)
			}
			return nil
		},
	}
}

func (a *app) whereCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Print the resolved storage root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.store.Root()
			if err != nil {
				return err
			}
			if a.outputJSON {
				return a.outputResult(map[string]string{
					"root":      root,
					"favorites": promptflow.CollectionPath(root, promptflow.Favorites),
					"templates": promptflow.CollectionPath(root, promptflow.Templates),
				})
			}
			fmt.Fprintln(a.out, root)
			return nil
		},
	}
}

func (a *app) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <dest-dir>",
		Short: "Archive the storage root",
		Long: `Write every file under the storage root into one zip archive in
dest-dir (created if missing) and print its path and BLAKE2b-256 digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.store.Export(args[0])
			if err != nil {
				return err
			}
			digest, err := promptflow.ArchiveDigest(path)
			if err != nil {
				return err
			}
			if a.outputJSON {
				return a.outputResult(map[string]string{"archive": path, "blake2b": digest})
			}
			a.printSuccess("exported %s", path)
			fmt.Fprintf(a.out, "  blake2b-256 %s\n", digest)
			return nil
		},
	}
}
