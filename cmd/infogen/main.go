// Command infogen renders an infographic PNG from a JSON data file.
//
// With no flags it reads data.json and writes output_infographic.png in the
// working directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/infogen"
	"github.com/spf13/cobra"
)

type options struct {
	data    string
	out     string
	preset  string
	config  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "infogen",
		Short: "Render an infographic PNG from a JSON data file",
		Long: `infogen loads a JSON data file and draws a fixed sequence of panels
(title, definition, stats, platform donut, age bars, timeline, lists,
buzzwords, sources, footer) onto a single canvas, then saves it as PNG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			infogen.SetLogger(newLogger(cmd.ErrOrStderr(), opts.verbose))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd.OutOrStdout(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.preset, "preset", "", "layout preset: desktop or phone (default desktop)")
	pf.StringVar(&opts.config, "config", "", "YAML config file overriding the preset")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log each panel as it is drawn")

	f := root.Flags()
	f.StringVar(&opts.data, "data", infogen.DefaultDataPath, "input JSON file")
	f.StringVarP(&opts.out, "out", "o", "", "output PNG file (default from preset)")

	root.AddCommand(newConfigCmd(opts))
	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// resolveConfig overlays the config file, when given, on the preset.
func resolveConfig(opts *options) (infogen.Config, error) {
	if opts.config == "" {
		return infogen.Preset(opts.preset)
	}
	return infogen.LoadConfig(opts.config, opts.preset)
}

func runRender(stdout io.Writer, opts *options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	out, err := infogen.Generate(opts.data, opts.out, cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Infographic saved to %s\n", out)
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
