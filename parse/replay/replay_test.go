package replay

import (
	"strings"
	"testing"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
)

func TestRunBuildsStack(t *testing.T) {
	script := `
# two pushes on version 0
size 2 3 0 3
push 0 1
push 0 2
`
	r := NewRunner()
	defer r.Close()

	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	s := r.Stack()
	if got := s.VersionCount(); got != 1 {
		t.Errorf("VersionCount = %d, want 1", got)
	}
	if got := s.TopState(0); got != 2 {
		t.Errorf("TopState = %d, want 2", got)
	}
	want := parse.Length{Bytes: 4, Chars: 6, Rows: 0, Columns: 6}
	if got := s.TopPosition(0); got != want {
		t.Errorf("TopPosition = %v, want %v", got, want)
	}
}

func TestRunPopCreatesVersion(t *testing.T) {
	script := `
push 0 1
push 0 2
pop 0 1
`
	r := NewRunner()
	defer r.Close()

	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := r.Stack().VersionCount(); got != 2 {
		t.Errorf("VersionCount = %d, want 2", got)
	}
	if got := r.Stack().TopState(1); got != 1 {
		t.Errorf("TopState(1) = %d, want 1", got)
	}
}

func TestApplyPushModifiers(t *testing.T) {
	r := NewRunner()
	defer r.Close()

	if err := r.Apply("push 0 error sym=9"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := r.Stack().TopState(0); got != parse.ErrorState {
		t.Errorf("TopState = %d, want error state", got)
	}

	// a pending head pops back off, revealing the error node
	if err := r.Apply("push 0 7 pending"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := r.Apply("pop-pending 0"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := r.Stack().TopState(0); got != parse.ErrorState {
		t.Errorf("TopState = %d, want error state", got)
	}
}

func TestApplyExtraTreesDoNotCount(t *testing.T) {
	r := NewRunner()
	defer r.Close()

	for _, line := range []string{"push 0 1", "push 0 2 extra", "pop 0 1"} {
		if err := r.Apply(line); err != nil {
			t.Fatalf("Apply(%q): %v", line, err)
		}
	}
	if got := r.Stack().VersionCount(); got != 2 {
		t.Errorf("VersionCount = %d, want 2", got)
	}
	if got := r.Stack().TopState(1); got != parse.RootState {
		t.Errorf("TopState(1) = %d, want root state", got)
	}
}

func TestRunReportsBadLines(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown op", "shove 0 1"},
		{"missing version", "push"},
		{"version out of range", "push 3 1"},
		{"negative count", "push 0 1\npop 0 -1"},
		{"bad size", "size 1 2 3"},
		{"bad modifier", "push 0 1 quickly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			defer r.Close()
			if err := r.Run(strings.NewReader(tt.script)); err == nil {
				t.Error("Run succeeded, want error")
			}
		})
	}
}
