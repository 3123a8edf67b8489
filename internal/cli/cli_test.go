package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stringart/pkg/chord"
	"github.com/matzehuels/stringart/pkg/errors"
	"github.com/matzehuels/stringart/pkg/observability"
	"github.com/matzehuels/stringart/pkg/pipeline"
)

const sampleNotes = "1,5,2,6,8,4,1,7,3"

// execute runs the root command with args, feeding stdin, and returns what
// it wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return executeLogged(t, io.Discard, LogInfo, stdin, args...)
}

// executeLogged is like execute but sends the CLI's log output to logw.
func executeLogged(t *testing.T, logw io.Writer, level log.Level, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(logw, level)
	root := c.RootCommand()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommands(t *testing.T) {
	notes := writeFile(t, "notes.txt", "1,5,2,6,8,4,1,7,3,6\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"knots from stdin", sampleNotes, []string{"knots"}, "14"},
		{"knots dash", sampleNotes, []string{"knots", "-"}, "14"},
		{"knots extended", "1,5,2,6,8,4,1,7,3,5,7,8,2", []string{"knots", "--nails", "8"}, "21"},
		{"knots wrap on circle", "3,5,6,12", []string{"knots", "-n", "8"}, "1"},
		{"knots wrap on line", "3,5,6,12", []string{"knots", "-n", "8", "-t", "linear"}, "0"},
		{"cut from file", "", []string{"cut", notes}, "7"},
		{"cut on circle", "", []string{"cut", notes, "--nails", "8"}, "7"},
		{"cut brute force", "", []string{"--strategy", "brute", "cut", notes}, "7"},
		{"cut skips shared nails", "3,7,5,7", []string{"cut", "-t", "linear"}, "3"},
		{"cut with zero nail", "0,5,2,6,8,4,1,7,3,6", []string{"cut", "-t", "linear"}, "7"},
		{"center", sampleNotes, []string{"center", "--nails", "8"}, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("execute %v: %v", tt.args, err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  errors.Code
	}{
		{"malformed", "1,x,3", []string{"knots"}, errors.ErrCodeMalformedInput},
		{"too short", "4", []string{"knots"}, errors.ErrCodeInsufficientInput},
		{"missing file", "", []string{"knots", "does-not-exist.txt"}, errors.ErrCodeFileNotFound},
		{"nails too few for line", "3,5,6,12", []string{"cut", "-n", "8", "-t", "linear"}, errors.ErrCodeDomainTooSmall},
		{"bad topology", sampleNotes, []string{"knots", "-t", "spiral"}, errors.ErrCodeInvalidOption},
		{"bad strategy", sampleNotes, []string{"--strategy", "magic", "knots"}, errors.ErrCodeInvalidOption},
		{"bad format", sampleNotes, []string{"diagram", "--format", "gif"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("execute %v error = %v, want %s", tt.args, err, tt.want)
			}
		})
	}
}

func TestCenterOddNailsWarns(t *testing.T) {
	out, stderr, err := execute(t, sampleNotes, "center", "--nails", "7")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0" {
		t.Errorf("output = %q, want 0", out)
	}
	if !strings.Contains(stderr, "7 nails") {
		t.Errorf("stderr = %q, want an odd nail warning", stderr)
	}
}

func TestSolveCommand(t *testing.T) {
	out, _, err := execute(t, sampleNotes, "solve", "--nails", "8")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"knots", "14", "best cut", "3-7", "diameters"} {
		if !strings.Contains(out, want) {
			t.Errorf("solve output missing %q:\n%s", want, out)
		}
	}
}

func TestSolveCommandJSON(t *testing.T) {
	out, _, err := execute(t, sampleNotes, "solve", "--nails", "8", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var res pipeline.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	want := pipeline.Result{
		Chords:    8,
		Nails:     8,
		Topology:  pipeline.TopologyCircular,
		Knots:     14,
		Cut:       chord.Cut{Low: 3, High: 7},
		Severed:   7,
		Diameters: 4,
	}
	if res != want {
		t.Errorf("solve --json = %+v, want %+v", res, want)
	}
}

func TestDiagramCommand(t *testing.T) {
	out, _, err := execute(t, sampleNotes, "diagram", "--format", "dot", "--nails", "8", "--cut")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "graph G {") || !strings.Contains(out, "style=dashed") {
		t.Errorf("diagram output is not a DOT graph with a cut:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "chords.dot")
	out, _, err = execute(t, sampleNotes, "diagram", "-f", "dot", "-o", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q does not name %s", out, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"n1" -- "n5"`)) {
		t.Errorf("written diagram missing edge n1-n5:\n%s", data)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := execute(t, "", "completion", shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, "stringart") {
				t.Errorf("%s completion does not mention stringart", shell)
			}
		})
	}
}

func TestExploreRejectsStdin(t *testing.T) {
	if _, _, err := execute(t, sampleNotes, "explore", "-"); err == nil {
		t.Error("explore - should fail")
	}
}
