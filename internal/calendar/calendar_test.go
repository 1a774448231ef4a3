package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
)

// unfold joins RFC 5545 continuation lines.
func unfold(s string) string {
	return strings.NewReplacer("\r\n ", "", "\r\n\t", "").Replace(s)
}

func TestBuildICS(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	out := BuildICS(Event{Name: "Party, Saturday", ShareURL: "https://listassist.app/share.html#abc", Start: now}, now, "fixed-uid")
	flat := unfold(out)

	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"VERSION:2.0\r\n",
		"PRODID:-//List Assist//Shared List//EN\r\n",
		"BEGIN:VEVENT\r\n",
		"UID:fixed-uid@listassist\r\n",
		"DTSTAMP:20260301T093000Z\r\n",
		"DTSTART:20260301T093000Z\r\n",
		"DTEND:20260301T103000Z\r\n",
		`SUMMARY:Shopping: Party\, Saturday` + "\r\n",
		"DESCRIPTION:View the shared list: https://listassist.app/share.html#abc\r\n",
		"LOCATION:https://listassist.app/share.html#abc\r\n",
		"END:VEVENT\r\n",
		"END:VCALENDAR",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	start, err := events[0].GetStartAt()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	end, err := events[0].GetEndAt()
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if !start.Equal(now) || end.Sub(start) != time.Hour {
		t.Fatalf("start = %v, end = %v", start, end)
	}
}

func TestBuildICSEmptyNameAndEscaping(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	out := unfold(BuildICS(Event{Name: "  ", ShareURL: "https://x/#a;b", Start: now}, now, "u"))
	if !strings.Contains(out, "SUMMARY:Shopping: Shared List\r\n") {
		t.Errorf("summary fallback missing:\n%s", out)
	}
	if !strings.Contains(out, `LOCATION:https://x/#a\;b`) {
		t.Errorf("semicolon not escaped:\n%s", out)
	}
}

func TestBuildICSFoldsLongURLs(t *testing.T) {
	t.Parallel()

	long := "https://listassist.app/share.html#" + strings.Repeat("QUJD", 60)
	now := time.Unix(0, 0)
	out := BuildICS(Event{Name: "x", ShareURL: long, Start: now}, now, "u")
	if strings.Contains(out, "LOCATION:"+long) {
		t.Fatalf("long location was not folded")
	}
	if !strings.Contains(unfold(out), "LOCATION:"+long) {
		t.Fatalf("folded location does not unfold to the original")
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Weekend groceries!": "Weekend_groceries_.ics",
		"":                   "Shared_List.ics",
		"café/2026":          "caf__2026.ics",
		"ABC123":             "ABC123.ics",
	}
	for in, want := range tests {
		if got := Filename(in); got != want {
			t.Errorf("Filename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p, err := Save(dir, Event{Name: "My List", ShareURL: "https://x/#y"}, now)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(p) != "My_List.ics" {
		t.Fatalf("path = %q", p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "DTSTART:20260102T030405Z") || !strings.Contains(string(b), "DTEND:20260102T040405Z") {
		t.Fatalf("unexpected file:\n%s", b)
	}
}
