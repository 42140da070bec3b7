package cli

import (
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	expected := []string{
		"find", "invoke", "set-value", "toggle", "expand", "collapse",
		"select", "wait", "patterns", "serve", "version",
	}
	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		if !registered[name] {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	if err := rootCmd.PersistentFlags().Set("format", "csv"); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = rootCmd.PersistentFlags().Set("format", "")
	}()

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("expected an error for --format csv")
	}
}
