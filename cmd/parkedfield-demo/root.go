package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/parkedfield"
	"github.com/iw2rmb/parkedfield/internal/config"
	"github.com/iw2rmb/parkedfield/internal/logging"
)

var rootCmd = newRootCmd()

func Execute() error {
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "parkedfield-demo",
		Short:         "Type into a field with a parked suffix or prefix",
		Long:          `parkedfield-demo runs a single input whose parked text (".slack.com" by default) stays attached to whatever you type.`,
		Version:       parkedfield.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().String("config", "", "Config file (default $XDG_CONFIG_HOME/parkedfield/config.yaml)")
	cmd.Flags().String("log-file", "", "Log file (default $XDG_STATE_HOME/parkedfield/parkedfield.log)")
	cmd.Flags().String("parked", "", "Parked text kept attached to the input")
	cmd.Flags().String("placeholder", "", "Placeholder shown while the input is empty")
	cmd.Flags().Bool("prefix", false, "Park the text before the input instead of after it")
	cmd.Flags().Int("width", 0, "Input width in cells (0 = unbounded)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	logPath, _ := cmd.Flags().GetString("log-file")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger, closer, err := logging.Init(logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "version", parkedfield.Version(), "parked", cfg.Parked(), "edge", cfg.Edge().String())

	final, err := tea.NewProgram(newApp(cfg, logger)).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if a, ok := final.(app); ok && a.submitted {
		fmt.Fprintln(cmd.OutOrStdout(), a.value)
	}
	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("parked") {
		v, _ := flags.GetString("parked")
		cfg.ParkedText = &v
	}
	if flags.Changed("placeholder") {
		v, _ := flags.GetString("placeholder")
		cfg.PlaceholderText = &v
	}
	if flags.Changed("prefix") {
		prefix, _ := flags.GetBool("prefix")
		atEnd := !prefix
		cfg.ParkedTextAtEnd = &atEnd
	}
	if flags.Changed("width") {
		width, _ := flags.GetInt("width")
		if width < 0 {
			return fmt.Errorf("invalid --width %d: must not be negative", width)
		}
		cfg.Width = width
	}
	return nil
}
