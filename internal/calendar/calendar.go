// Package calendar builds the iCalendar reminder file offered next to a shared list.
package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	prodID       = "-//List Assist//Shared List//EN"
	uidDomain    = "listassist"
	eventLength  = time.Hour
	fallbackName = "Shared List"
)

// Event is a one-hour reminder pointing back at a share URL.
type Event struct {
	Name     string
	ShareURL string
	Start    time.Time
}

// BuildICS returns the calendar document for ev. Lines end in CRLF.
func BuildICS(ev Event, now time.Time, uid string) string {
	name := strings.TrimSpace(ev.Name)
	if name == "" {
		name = fallbackName
	}
	start := ev.Start.UTC()

	cal := ics.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(uid + "@" + uidDomain)
	event.SetDtStampTime(now.UTC())
	event.SetStartAt(start)
	event.SetEndAt(start.Add(eventLength))
	event.SetSummary("Shopping: " + name)
	event.SetDescription("View the shared list: " + ev.ShareURL)
	event.SetLocation(ev.ShareURL)
	return cal.Serialize(ics.WithNewLineWindows)
}

// Filename turns a list name into "<name>.ics" with every character outside
// [A-Za-z0-9] replaced by '_'.
func Filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallbackName
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".ics"
}

// Save writes the calendar file for ev into dir and returns its path.
// A zero Start means "now".
func Save(dir string, ev Event, now time.Time) (string, error) {
	if ev.Start.IsZero() {
		ev.Start = now
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	p := filepath.Join(dir, Filename(ev.Name))
	body := BuildICS(ev, now, uuid.NewString())
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}
