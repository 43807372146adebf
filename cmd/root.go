// Package cmd wires the wayfind CLI: flag parsing, config resolution, and
// launching either the interactive browser or the one-shot banner output.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/wayfind/internal/access"
	"github.com/oakwood-commons/wayfind/internal/config"
	"github.com/oakwood-commons/wayfind/internal/session"
	"github.com/oakwood-commons/wayfind/internal/ui"
	"github.com/oakwood-commons/wayfind/pkg/engine"
	"github.com/oakwood-commons/wayfind/pkg/logger"
	"github.com/oakwood-commons/wayfind/pkg/menu"
	"github.com/oakwood-commons/wayfind/pkg/settings"
)

var (
	workspace   string
	menuFile    string
	block       string
	menuDir     string
	configFile  string
	separator   string
	noColor     bool
	debug       bool
	logLevel    int8
	printBanner bool
)

var (
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runProgram       = func(p *tea.Program) error { _, err := p.Run(); return err }
)

var rootCtx = context.Background()

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [menu-file]",
	Short: "Browse hierarchical menu definitions with a navigation trail",
	Long: settings.CliBinaryName + ` loads YAML menu documents and tracks the
path taken through them: every menu, submenu, link, and panel visited is
recorded on a per-scope trail, rendered as a breadcrumb line, and unwound
step by step on back-navigation.`,
	Example: "\n  wayfind ./menus/main.yaml\n  wayfind --menus ./menus -f main -b home\n  wayfind --menus ./menus --print-banner",
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := logLevel
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			// A positional menu file sets both the directory and the file.
			menuDir = filepath.Dir(args[0])
			base := filepath.Base(args[0])
			menuFile = strings.TrimSuffix(base, filepath.Ext(base))
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("no-color") {
			cfg.NoColor = noColor
		}
		if cmd.Flags().Changed("separator") {
			cfg.Separator = separator
		}

		lgr := logger.FromContext(rootCtx)
		checker, err := access.NewChecker()
		if err != nil {
			return err
		}
		loader := menu.NewFileLoader(menuDir).WithLogger(*lgr).WithValidator(checker)

		sess := session.New(workspace, menuFile, block)
		eng, err := engine.New(sess,
			engine.WithLoader(loader),
			engine.WithAccessChecker(checker),
			engine.WithNavBarDefaults(cfg.NavBar),
			engine.WithUser(cfg.User),
			engine.WithSeparator(cfg.Separator),
			engine.WithLogger(*lgr),
		)
		if err != nil {
			return err
		}

		start, err := loader.Load(rootCtx, menuFile, block)
		if err != nil {
			return err
		}

		if printBanner || !stdoutIsTerminal() {
			return runPrintBanner(cmd, eng, start)
		}

		browser := ui.NewBrowser(eng, start, cfg.NoColor)
		p := tea.NewProgram(browser, tea.WithContext(rootCtx))
		return runProgram(p)
	},
}

// runPrintBanner is the non-interactive mode: load the entry block, seed
// its scope, and print the live banner map.
func runPrintBanner(cmd *cobra.Command, eng *engine.Engine, start *menu.Block) error {
	if err := eng.Reset(start.File, start.Name); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", start.Title)
	for sc, line := range eng.Banner() {
		fmt.Fprintf(out, "%s: %s\n", sc, line)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print " + settings.CliBinaryName + " version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

// bindEntryFlags registers the flags that pick the navigation entry point.
// Shared so future subcommands can accept the same triple.
func bindEntryFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&workspace, "workspace", "w", "default", "workspace label used in scope keys")
	fs.StringVarP(&menuFile, "file", "f", "main", "menu file to open (logical name, no extension)")
	fs.StringVarP(&block, "block", "b", "main", "block inside the menu file to open")
}

func init() {
	bindEntryFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&menuDir, "menus", ".", "directory containing menu YAML files")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a config file (navbar, user, formatting)")
	rootCmd.Flags().StringVar(&separator, "separator", "", "breadcrumb separator (default from config)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (same as --log-level -1)")
	rootCmd.Flags().Int8Var(&logLevel, "log-level", 0, "minimum log level (zap levels, negative is more verbose)")
	rootCmd.Flags().BoolVar(&printBanner, "print-banner", false, "print the banner for the entry block and exit")
	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
