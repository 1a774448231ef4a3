package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/codec"
	"github.com/Makepad-fr/sharelist/internal/store/jsonstore"
)

func newEncodeCmd(app *App) *cobra.Command {
	var asURL bool

	cmd := &cobra.Command{
		Use:   "encode [list.json]",
		Short: "Encode a list document file into a share fragment",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := jsonstore.Load(path)
			if err != nil {
				return err
			}
			var out string
			if asURL {
				out, err = codec.ShareURL(app.cfg.BaseURL, doc)
			} else {
				out, err = codec.Encode(doc)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&asURL, "url", false, "Print the full share URL")
	return cmd
}

func newDecodeCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "decode <share-url|fragment|->",
		Short: "Print the list document carried by a share link",
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
			if outPath != "" {
				return jsonstore.Save(outPath, doc)
			}
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Save as a list document file")
	return cmd
}
