package cli

import (
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/tui"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <share-url|fragment|->",
		Short: "Browse a shared list interactively",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := app.readInput(args[0])
			if err != nil {
				return err
			}
			doc, err := app.decode(input)
			if err != nil {
				return app.failDecode(err)
			}
			return tui.Run(doc, tui.Options{
				Renderer:     app.renderer,
				Clipboard:    app.opt.Clipboard,
				ShareURL:     app.shareURL(input),
				OutputDir:    app.cfg.OutputDir,
				CopyFeedback: app.cfg.CopyFeedback,
			})
		},
	}
}
