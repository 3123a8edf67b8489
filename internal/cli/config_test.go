package cli

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stringart/pkg/errors"
	"github.com/matzehuels/stringart/pkg/pipeline"
)

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "stringart", "config.toml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     pipeline.Options
		wantCode errors.Code
	}{
		{
			name:    "engine table",
			content: "[engine]\nnails = 256\ntopology = \"circular\"\nstrategy = \"sweep\"\n",
			want:    pipeline.Options{Nails: 256, Topology: "circular", Strategy: "sweep"},
		},
		{
			name:    "empty",
			content: "",
		},
		{
			name:     "unknown key",
			content:  "[engine]\nnailz = 3\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "invalid topology",
			content:  "[engine]\ntopology = \"spiral\"\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "negative nails",
			content:  "[engine]\nnails = -8\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "not toml",
			content:  "[engine\n",
			wantCode: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.toml", tt.content)
			cfg, err := readConfig(path, true)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("readConfig() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("readConfig() error = %v", err)
			}
			if cfg.Engine.Nails != tt.want.Nails || cfg.Engine.Topology != tt.want.Topology || cfg.Engine.Strategy != tt.want.Strategy {
				t.Errorf("readConfig() = %+v, want %+v", cfg.Engine, tt.want)
			}
		})
	}
}

func TestReadConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	if _, err := readConfig(missing, false); err != nil {
		t.Errorf("missing default config: %v", err)
	}
	if _, err := readConfig(missing, true); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing explicit config error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestConfigFileDrivesCommands(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[engine]\nnails = 8\ntopology = \"circular\"\n")

	out, _, err := execute(t, "3,5,6,12", "--config", cfg, "knots")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1" {
		t.Errorf("knots with circular config = %q, want 1", out)
	}

	// Flags win over the config file.
	out, _, err = execute(t, "3,5,6,12", "--config", cfg, "knots", "--topology", "linear")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "0" {
		t.Errorf("knots with --topology linear = %q, want 0", out)
	}
}

func TestConfigCommands(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[engine]\nnails = 12\n")

	out, _, err := execute(t, "", "--config", cfg, "config", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != cfg {
		t.Errorf("config path = %q, want %q", out, cfg)
	}

	out, _, err = execute(t, "", "--config", cfg, "--strategy", "brute", "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[engine]", "nails = 12", `topology = "circular"`, `strategy = "brute"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestOptionsMerge(t *testing.T) {
	tests := []struct {
		name         string
		config       pipeline.Options
		args         []string
		strategy     string
		wantTopology string
		wantNails    int
		wantStrategy string
	}{
		{"nothing set", pipeline.Options{}, nil, "", "", 0, ""},
		{"nails imply circle", pipeline.Options{}, []string{"--nails", "8"}, "", "circular", 8, ""},
		{"explicit line", pipeline.Options{}, []string{"-n", "8", "-t", "linear"}, "", "linear", 8, ""},
		{"config nails", pipeline.Options{Nails: 16}, nil, "", "circular", 16, ""},
		{"flag beats config", pipeline.Options{Nails: 16, Topology: "linear"}, []string{"-n", "4"}, "", "linear", 4, ""},
		{"strategy flag", pipeline.Options{Strategy: "sweep"}, nil, "brute", "", 0, "brute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CLI{Logger: newLogger(io.Discard, LogInfo), config: Config{Engine: tt.config}, strategy: tt.strategy}
			var f engineFlags
			cmd := &cobra.Command{Use: "test"}
			addEngineFlags(cmd, &f)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}

			got := c.options(cmd, &f)
			if got.Topology != tt.wantTopology || got.Nails != tt.wantNails {
				t.Errorf("options() = %s/%d, want %s/%d", got.Topology, got.Nails, tt.wantTopology, tt.wantNails)
			}
			if tt.wantStrategy != "" && got.Strategy != tt.wantStrategy {
				t.Errorf("options().Strategy = %q, want %q", got.Strategy, tt.wantStrategy)
			}
		})
	}
}
