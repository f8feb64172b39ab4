package workflow

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"watchsweep/pkg/models"
)

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}

// fakeArrClient records deletions and can be told to fail for given IDs
type fakeArrClient struct {
	name    string
	deleted []int
	failIDs map[int]bool
}

func (f *fakeArrClient) GetName() string { return f.name }

func (f *fakeArrClient) TestConnection(ctx context.Context) error { return nil }

func (f *fakeArrClient) GetLibrary(ctx context.Context) ([]models.LibraryEntry, error) {
	return nil, nil
}
func (f *fakeArrClient) MediaURL(titleSlug string) string { return "http://test/" + titleSlug }

func (f *fakeArrClient) DeleteMedia(ctx context.Context, id int) error {
	if f.failIDs[id] {
		return fmt.Errorf("failed to delete %s %d, status: 500", f.name, id)
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// scriptedConfirmer replays a fixed sequence of answers
type scriptedConfirmer struct {
	answers []bool
	next    int
}

func (c *scriptedConfirmer) Confirm(prompt string) (bool, error) {
	if c.next >= len(c.answers) {
		return false, fmt.Errorf("unexpected prompt: %s", prompt)
	}
	answer := c.answers[c.next]
	c.next++
	return answer, nil
}

func testItems() []models.UnwatchedItem {
	return []models.UnwatchedItem{
		{Title: "Inception", ID: 42, Kind: models.MediaKindMovie, URL: "http://radarr/movie/inception-2010", Year: 2010},
		{Title: "Firefly", ID: 10, Kind: models.MediaKindShow, URL: "http://sonarr/series/firefly", Year: 2002},
	}
}

func TestWorkflow_DeletesConfirmedItemsViaOwningService(t *testing.T) {
	sonarr := &fakeArrClient{name: "sonarr"}
	radarr := &fakeArrClient{name: "radarr"}
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}

	w := NewWorkflow(sonarr, radarr, confirmer, nopLogger{})

	stats, err := w.Run(context.Background(), testItems())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(radarr.deleted) != 1 || radarr.deleted[0] != 42 {
		t.Errorf("Expected radarr to delete [42], got %v", radarr.deleted)
	}
	if len(sonarr.deleted) != 1 || sonarr.deleted[0] != 10 {
		t.Errorf("Expected sonarr to delete [10], got %v", sonarr.deleted)
	}
	if stats.Prompted != 2 || stats.Deleted != 2 || stats.Declined != 0 || stats.Failed != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestWorkflow_DeclineLeavesItemUntouched(t *testing.T) {
	sonarr := &fakeArrClient{name: "sonarr"}
	radarr := &fakeArrClient{name: "radarr"}
	confirmer := &scriptedConfirmer{answers: []bool{false, true}}

	w := NewWorkflow(sonarr, radarr, confirmer, nopLogger{})

	stats, err := w.Run(context.Background(), testItems())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(radarr.deleted) != 0 {
		t.Errorf("Expected no radarr deletions, got %v", radarr.deleted)
	}
	if len(sonarr.deleted) != 1 {
		t.Errorf("Expected sonarr to delete one item, got %v", sonarr.deleted)
	}
	if stats.Declined != 1 || stats.Deleted != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestWorkflow_DeletionFailureContinues(t *testing.T) {
	sonarr := &fakeArrClient{name: "sonarr"}
	radarr := &fakeArrClient{name: "radarr", failIDs: map[int]bool{42: true}}
	confirmer := &scriptedConfirmer{answers: []bool{true, true}}

	w := NewWorkflow(sonarr, radarr, confirmer, nopLogger{})

	stats, err := w.Run(context.Background(), testItems())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if stats.Failed != 1 {
		t.Errorf("Expected 1 failure, got %d", stats.Failed)
	}
	if len(sonarr.deleted) != 1 {
		t.Errorf("Expected the run to continue past the failure, got %v", sonarr.deleted)
	}
}

func TestWorkflow_UnknownKindAborts(t *testing.T) {
	w := NewWorkflow(&fakeArrClient{name: "sonarr"}, &fakeArrClient{name: "radarr"}, &scriptedConfirmer{}, nopLogger{})

	items := []models.UnwatchedItem{{Title: "Mystery", ID: 1, Kind: "track"}}

	if _, err := w.Run(context.Background(), items); err == nil {
		t.Error("Expected an unknown media kind to abort the run")
	}
}

func TestTerminalConfirmer_Answers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"nope\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		c := &TerminalConfirmer{
			in:  bufio.NewReader(strings.NewReader(tt.input)),
			out: &out,
		}

		got, err := c.Confirm("Delete?")
		if err != nil {
			t.Fatalf("Confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %t, want %t", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Delete? [y/N]") {
			t.Errorf("Prompt not written, got %q", out.String())
		}
	}
}

func TestTerminalConfirmer_LastLineWithoutNewline(t *testing.T) {
	c := &TerminalConfirmer{
		in:  bufio.NewReader(strings.NewReader("yes")),
		out: &bytes.Buffer{},
	}

	got, err := c.Confirm("Delete?")
	if err != nil {
		t.Fatalf("Confirm() failed: %v", err)
	}
	if !got {
		t.Error("Expected a trailing answer without newline to be accepted")
	}
}
