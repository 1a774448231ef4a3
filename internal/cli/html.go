package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/codec"
	"github.com/Makepad-fr/sharelist/internal/htmlpage"
)

func newHTMLCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "html <share-url|fragment|->",
		Short: "Render a shared list as a standalone HTML page",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := app.readInput(args[0])
			if err != nil {
				return err
			}
			var page htmlpage.Page
			// A broken link still produces a page that says so.
			renderErr := app.renderer.RenderFragment(codec.FragmentFromInput(input), &page)
			if renderErr != nil {
				app.log.Debug().Err(renderErr).Msg("render html")
			}

			var buf bytes.Buffer
			if err := page.Write(&buf); err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return err
				}
			} else {
				if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write file: %w", err)
				}
				app.log.Info().Str("path", outPath).Msg("html written")
			}
			return renderErr
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
