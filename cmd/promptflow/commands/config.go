package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/promptflow/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change config.json",
		Long: `Inspect and change the configuration file.

Keys:
  ui.hotkey ui.closeAfterCopy ui.theme ui.language
  storage.path storage.format onboardingCompleted`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.outputJSON {
					return a.outputResult(a.cfg)
				}
				for _, k := range config.Keys() {
					v, _ := a.cfg.Get(k)
					fmt.Fprintf(a.out, "%s = %s\n", k, v)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change one value and save",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				err := a.persist(func(c *config.Config) error {
					return c.Set(args[0], args[1])
				})
				if err != nil {
					return err
				}
				a.printSuccess("%s saved", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(a.out, a.cfgPath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the defaults and save",
			Long:  "Restore the defaults of every key listed by config show. Other keys in config.json are kept.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				err := a.persist(func(c *config.Config) error {
					*c = *config.Default()
					return nil
				})
				if err != nil {
					return err
				}
				a.printSuccess("configuration reset")
				return nil
			},
		},
	)
	return cmd
}
