package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/codec"
	"github.com/Makepad-fr/sharelist/internal/config"
	"github.com/Makepad-fr/sharelist/internal/logging"
	"github.com/Makepad-fr/sharelist/internal/model"
	"github.com/Makepad-fr/sharelist/internal/render"
	"github.com/Makepad-fr/sharelist/internal/ui"
)

// App is the state shared by every subcommand.
type App struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool

	opt      Options
	cfg      config.Config
	log      zerolog.Logger
	renderer *render.Renderer
}

func NewRootCmd(opt Options) *cobra.Command {
	app := &App{opt: opt, log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "sharelist",
		Short:         "View lists shared through a URL fragment",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Print a shared list as a table
  sharelist show 'https://listassist.app/share.html#eyJuYW1lIjoiR3JvY2VyaWVzIn0%3D'

  # Browse it interactively (copy links, save a calendar reminder)
  sharelist view '#eyJuYW1lIjoiR3JvY2VyaWVzIn0%3D'

  # Build a share link from a JSON file
  sharelist encode list.json --url
`),
	}
	cmd.SetIn(opt.Stdin)
	cmd.SetOut(opt.Stdout)
	cmd.SetErr(opt.Stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.init()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default: $SHARELIST_HOME/config.yaml or ~/.sharelist/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colour output")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newHTMLCmd(app))
	cmd.AddCommand(newEncodeCmd(app))
	cmd.AddCommand(newDecodeCmd(app))
	cmd.AddCommand(newICSCmd(app))
	cmd.AddCommand(newCopyCmd(app))

	return cmd
}

func (a *App) init() error {
	ui.ConfigureColor(false, a.NoColor)

	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.Verbose {
		level = "debug"
	}
	a.log = logging.New(a.opt.Stderr, level)

	links, err := cfg.LinkTable()
	if err != nil {
		return fmt.Errorf("config affiliateRules: %w", err)
	}
	a.renderer = render.New(links, cfg.DefaultTheme)
	a.log.Debug().Str("baseURL", cfg.BaseURL).Int("affiliateRules", len(cfg.AffiliateRules)).Msg("config loaded")
	return nil
}

// exactArgs is cobra.ExactArgs with the failure classified as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

// readInput returns the raw share input: a URL, "#fragment", bare fragment, or
// "-" for stdin.
func (a *App) readInput(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	b, err := io.ReadAll(a.opt.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// decode turns a share input into a document and logs the failure kind.
func (a *App) decode(input string) (model.ListDocument, error) {
	doc, err := codec.Decode(codec.FragmentFromInput(input))
	if err != nil {
		ev := a.log.Debug().Err(err)
		var de *codec.DecodeError
		if errors.As(err, &de) {
			ev = ev.Str("kind", de.Kind.String())
		}
		ev.Msg("decode share fragment")
		return doc, err
	}
	a.log.Debug().Int("items", len(doc.Items)).Int("columns", len(doc.CustomColumns)).Msg("decoded share fragment")
	return doc, nil
}

// shareURL is the link the user opened, or one rebuilt from the base URL.
func (a *App) shareURL(input string) string {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "://") {
		return input
	}
	return strings.TrimSuffix(a.cfg.BaseURL, "#") + "#" + codec.FragmentFromInput(input)
}

func (a *App) failDecode(err error) error {
	var term ui.Terminal
	render.RenderError(err, &term)
	fmt.Fprintln(a.opt.Stdout, term.String())
	return reportedError{err: err}
}
