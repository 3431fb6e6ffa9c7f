package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		regex bool
		debug bool
		logs  string
	}{
		{
			name:  "on/off",
			body:  "[settings]\nuse regex = on\ndebug = off\nlogs folder = /tmp/logs/\n",
			regex: true, debug: false, logs: "/tmp/logs/",
		},
		{
			name:  "yes/no mixed case",
			body:  "[settings]\nuse regex = No\ndebug = YES\nlogs folder = /srv/chat\n",
			regex: false, debug: true, logs: "/srv/chat",
		},
		{
			name:  "numeric and colon delimiter",
			body:  "[settings]\nuse regex: 1\ndebug: 0\nlogs folder: logs\n",
			regex: true, debug: false, logs: "logs",
		},
		{
			name:  "case-insensitive names",
			body:  "[Settings]\nUse Regex = true\nDEBUG = false\nLogs Folder = x\n",
			regex: true, debug: false, logs: "x",
		},
		{
			name:  "windows path with trailing backslash",
			body:  "[settings]\nuse regex = off\ndebug = on\nlogs folder = C:\\Users\\me\\AppData\\Roaming\\.minecraft\\logs\\\n",
			regex: false, debug: true, logs: `C:\Users\me\AppData\Roaming\.minecraft\logs\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeSettings(t, tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.UseRegex != tt.regex {
				t.Errorf("expected UseRegex=%v, got %v", tt.regex, cfg.UseRegex)
			}
			if cfg.Debug != tt.debug {
				t.Errorf("expected Debug=%v, got %v", tt.debug, cfg.Debug)
			}
			if cfg.LogsPath != tt.logs {
				t.Errorf("expected LogsPath=%q, got %q", tt.logs, cfg.LogsPath)
			}
			if cfg.Encoding != "utf-8" {
				t.Errorf("expected default encoding utf-8, got %q", cfg.Encoding)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing section", "[other]\nuse regex = on\n"},
		{"missing use regex", "[settings]\ndebug = on\nlogs folder = x\n"},
		{"missing debug", "[settings]\nuse regex = on\nlogs folder = x\n"},
		{"missing logs folder", "[settings]\nuse regex = on\ndebug = on\n"},
		{"non-boolean regex", "[settings]\nuse regex = maybe\ndebug = on\nlogs folder = x\n"},
		{"non-boolean debug", "[settings]\nuse regex = on\ndebug = 2\nlogs folder = x\n"},
		{"bad fold case", "[settings]\nuse regex = on\ndebug = on\nlogs folder = x\nfold case = maybe\n"},
		{"unknown encoding", "[settings]\nuse regex = on\ndebug = on\nlogs folder = x\nencoding = klingon-8\n"},
		{"empty encoding", "[settings]\nuse regex = on\ndebug = on\nlogs folder = x\nencoding =\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.body)
			_, _, err := Resolve(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConfigError, got %T: %v", err, err)
			}
			if cerr.Path != path {
				t.Errorf("expected path %q, got %q", path, cerr.Path)
			}
			if !strings.Contains(cerr.Remediation(), "delete") {
				t.Errorf("expected remediation to mention deleting the file, got %q", cerr.Remediation())
			}
		})
	}
}

func TestLoadOptionalKeys(t *testing.T) {
	body := "[settings]\nuse regex = off\ndebug = off\nlogs folder = x\nencoding = windows-1252\nfold case = on\n"
	cfg, err := Load(writeSettings(t, body))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Encoding != "windows-1252" {
		t.Errorf("expected encoding windows-1252, got %q", cfg.Encoding)
	}
	if !cfg.FoldCase {
		t.Error("expected FoldCase to be true")
	}
}

func TestResolveCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg, created, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("expected created=true for a missing file")
	}
	if cfg.UseRegex {
		t.Error("expected default UseRegex=false")
	}
	if !cfg.Debug {
		t.Error("expected default Debug=true")
	}
	if cfg.LogsPath != DefaultLogsPath() {
		t.Errorf("expected default logs path %q, got %q", DefaultLogsPath(), cfg.LogsPath)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected settings file to be written: %v", err)
	}
	for _, want := range []string{"[settings]", "use regex", "off", "debug", "on", "logs folder"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("expected %q in written file:\n%s", want, raw)
		}
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away")
	}

	// A second resolve reads the file back with the same values.
	again, created, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("expected created=false once the file exists")
	}
	if again != cfg {
		t.Errorf("expected %+v, got %+v", cfg, again)
	}
}

func TestSaveLoadWindowsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	want := Config{UseRegex: true, Debug: false, LogsPath: `C:\logs\`, Encoding: "windows-1252", FoldCase: true}

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLogsPathFor(t *testing.T) {
	if got := logsPathFor("windows", `C:\Users\me\AppData\Roaming`, ""); got != `C:\Users\me\AppData\Roaming\.minecraft\logs\` {
		t.Errorf("unexpected windows path %q", got)
	}
	linux := logsPathFor("linux", "", "/home/me")
	if linux != filepath.Join("/home/me", ".minecraft", "logs")+string(filepath.Separator) {
		t.Errorf("unexpected linux path %q", linux)
	}
	mac := logsPathFor("darwin", "", "/Users/me")
	if !strings.Contains(mac, "Application Support") {
		t.Errorf("unexpected darwin path %q", mac)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"Yes", true, false},
		{"1", true, false},
		{" TRUE ", true, false},
		{"off", false, false},
		{"NO", false, false},
		{"0", false, false},
		{"false", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := ParseBool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBool(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
