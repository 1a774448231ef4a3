package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/ui"
)

func newShowCmd(app *App) *cobra.Command {
	var showURLs bool
	var borders string

	cmd := &cobra.Command{
		Use:   "show <share-url|fragment|->",
		Short: "Print a shared list as a table",
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
			if borders == "" {
				borders = app.cfg.Borders
			}
			term := &ui.Terminal{Borders: ui.Borders(borders), ShowURL: showURLs}
			app.renderer.Render(doc, term)
			app.renderer.CheckImage(doc, term)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), term.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&showURLs, "urls", false, "Show full links instead of site names")
	cmd.Flags().StringVar(&borders, "borders", "", "Frame style (classic|rounded|mono)")
	return cmd
}
