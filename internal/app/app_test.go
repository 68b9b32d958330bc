package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCommandRegistration(t *testing.T) {
	want := []string{"assess", "audit", "generate", "watch", "history"}

	registered := make(map[string]bool)
	for _, cmd := range RootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("%s command not registered with root command", name)
		}
	}
}

func TestCommandFlags(t *testing.T) {
	tests := []struct {
		command string
		flags   []string
	}{
		{"assess", []string{"json", "record"}},
		{"audit", []string{"json", "record", "fail-under"}},
		{"generate", []string{"length", "count", "no-symbols", "exclude-similar", "pronounceable", "assess"}},
		{"watch", []string{"record"}},
		{"history", []string{"limit", "summary"}},
	}

	for _, tt := range tests {
		var found bool
		for _, cmd := range RootCmd.Commands() {
			if cmd.Name() != tt.command {
				continue
			}
			found = true
			for _, flagName := range tt.flags {
				if cmd.Flags().Lookup(flagName) == nil {
					t.Errorf("%s: flag %s not defined", tt.command, flagName)
				}
			}
		}
		if !found {
			t.Errorf("command %s not found", tt.command)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, flagName := range []string{"db", "config"} {
		if RootCmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("persistent flag %s not defined", flagName)
		}
	}
}

func TestReadPasswordList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	content := "password\n# a comment\n\nhunter2\r\n  spaced  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write list: %v", err)
	}

	passwords, err := readPasswordList(path)
	if err != nil {
		t.Fatalf("readPasswordList failed: %v", err)
	}

	want := []string{"password", "hunter2", "  spaced  "}
	if len(passwords) != len(want) {
		t.Fatalf("got %d passwords, want %d: %v", len(passwords), len(want), passwords)
	}
	for i, pw := range want {
		if passwords[i] != pw {
			t.Errorf("password[%d] = %q, want %q", i, passwords[i], pw)
		}
	}
}

func TestReadPasswordListMissingFile(t *testing.T) {
	if _, err := readPasswordList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAssessAllSortsWeakestFirst(t *testing.T) {
	results := assessAll([]string{"Xk9#mQ2!vL7$", "123456", "correcthorsebatterystaple"})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Assessment.Score < results[i-1].Assessment.Score {
			t.Errorf("results not sorted: score[%d]=%d < score[%d]=%d",
				i, results[i].Assessment.Score, i-1, results[i-1].Assessment.Score)
		}
	}
	if results[0].Password != "123456" {
		t.Errorf("expected weakest password first, got %q", results[0].Password)
	}
}

func TestCountBelow(t *testing.T) {
	results := assessAll([]string{"123456", "password", "Xk9#mQ2!vL7$"})

	if got := countBelow(results, 50); got != 2 {
		t.Errorf("countBelow(50) = %d, want 2", got)
	}
	if got := countBelow(results, 1); got != 0 {
		t.Errorf("countBelow(1) = %d, want 0", got)
	}
}
