package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/clipboard"
	"github.com/Makepad-fr/sharelist/internal/ui"
)

func newCopyCmd(app *App) *cobra.Command {
	var item int

	cmd := &cobra.Command{
		Use:   "copy <share-url|fragment|->",
		Short: "Copy the share link, or one item's link, to the clipboard",
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

			text, what := app.shareURL(input), "share link"
			if item != 0 {
				if item < 1 || item > len(doc.Items) {
					return usageError{err: fmt.Errorf("item out of range: have %d, got %d", len(doc.Items), item)}
				}
				rows := app.renderer.Rows(doc)
				text, what = rows[item-1].URL, "item link"
				if text == "" {
					return errors.New("item has no link")
				}
			}
			if err := clipboard.Copy(app.opt.Clipboard, text); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "copied "+what)
			return nil
		},
	}
	cmd.Flags().IntVar(&item, "item", 0, "1-based item index to copy instead of the share link")
	return cmd
}
