package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoscut/iwscan/internal/cell"
	"github.com/thoscut/iwscan/internal/config"
	"github.com/thoscut/iwscan/internal/logging"
	"github.com/thoscut/iwscan/internal/render"
	"github.com/thoscut/iwscan/internal/scanner"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// NoCellsNotice is printed instead of any output when a scan finds nothing.
const NoCellsNotice = "No cells found!"

// newBackend picks where scan text comes from. Tests replace it.
var newBackend = func(cfg *config.Config, fromFile bool, stdin io.Reader) scanner.Backend {
	if fromFile {
		return scanner.FileBackend{Stdin: stdin}
	}
	return scanner.CommandBackend{Command: cfg.Scan.Command}
}

type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config

	show     []string
	sortBy   []string
	find     string
	omit     bool
	output   string
	fromFile bool
}

// NewRootCmd builds the iwscan command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "iwscan [iface]",
		Short: "List wireless access points found by iwlist",
		Long: `iwscan runs "iwlist [iface] scan", collects one record per access point
and prints the chosen fields as a list, an aligned table, HTML <option>
elements, JSON or YAML.

With --file the argument names a file holding captured scan text instead
of an interface ("-" reads stdin).`,
		Args:              cobra.MaximumNArgs(1),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runScan,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file path (default "+config.DefaultPath()+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	f := rootCmd.Flags()
	f.StringArrayVarP(&a.show, "show", "s", nil, "fields to show, in order (a,c,e,f,l,q)")
	f.StringArrayVarP(&a.sortBy, "sort-by", "b", nil, "fields to sort by (a,c,e,f,l,q)")
	f.StringVarP(&a.find, "find", "f", "", "only keep cells whose KEY value contains SUBSTRING (KEY=SUBSTRING)")
	f.BoolVarP(&a.omit, "omit", "o", false, "omit labels and table header")
	f.StringVar(&a.output, "output", "", "output format: list, table, option, json, yaml")
	f.BoolVar(&a.fromFile, "file", false, "read captured scan text from the file named by the argument")

	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command line with ctx and returns the first error.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadFrom(a.cfgFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := a.cfg.Logging
	if a.logLevel != "" {
		logCfg.Level = a.logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), logCfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func (a *app) runScan(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) > 0 {
		target = args[0]
	}
	if a.fromFile && target == "" {
		return fmt.Errorf("--file needs a path argument: %w", scanner.ErrNoTarget)
	}

	flags := cmd.Flags()
	out := a.cfg.Output
	if flags.Changed("output") {
		out.Format = a.output
	}
	if flags.Changed("omit") {
		out.OmitLabels = a.omit
	}

	format, err := render.ParseFormat(out.Format)
	if err != nil {
		return err
	}
	showKeys := []string{out.Show}
	if flags.Changed("show") {
		showKeys = a.show
	}
	show, err := cell.ParseFields(showKeys)
	if err != nil {
		return fmt.Errorf("--show: %w", err)
	}
	sortKeys := []string{out.SortBy}
	if flags.Changed("sort-by") {
		sortKeys = a.sortBy
	}
	sortBy, err := cell.ParseFields(sortKeys)
	if err != nil {
		return fmt.Errorf("--sort-by: %w", err)
	}

	var filter *cell.Filter
	if a.find != "" {
		if filter, err = cell.ParseFilter(a.find); err != nil {
			return err
		}
	}

	sc := scanner.New(newBackend(a.cfg, a.fromFile, cmd.InOrStdin()), filter)
	scan, err := sc.Scan(cmd.Context(), target)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(scan.Cells) == 0 {
		slog.Info("scan returned no cells", "target", target)
		fmt.Fprintln(w, newStyles(w).notice.Render(NoCellsNotice))
		return nil
	}

	return render.Write(w, format, cell.Sort(scan.Cells, sortBy), render.Options{
		Show:       show,
		OmitLabels: out.OmitLabels,
		Widths:     scan.Widths,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// The version must print even with a broken config file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "iwscan", Version)
		},
	}
}
