package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/sharelist/internal/calendar"
	"github.com/Makepad-fr/sharelist/internal/ui"
)

func newICSCmd(app *App) *cobra.Command {
	var dir string
	var start string

	cmd := &cobra.Command{
		Use:   "ics <share-url|fragment|->",
		Short: "Save a one-hour calendar reminder for a shared list",
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
			ev := calendar.Event{Name: doc.Name, ShareURL: app.shareURL(input)}
			if start != "" {
				ev.Start, err = time.Parse(time.RFC3339, start)
				if err != nil {
					return usageError{err: fmt.Errorf("--start: %w", err)}
				}
			}
			if dir == "" {
				dir = app.cfg.OutputDir
			}
			p, err := calendar.Save(dir, ev, time.Now())
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "saved "+p)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "output", "o", "", "Directory for the .ics file (default from config)")
	cmd.Flags().StringVar(&start, "start", "", "Event start (RFC 3339, default now)")
	return cmd
}
