package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlossaryCommandConvertsExplicitPath(t *testing.T) {
	setupCLITestEnv(t)

	path := filepath.Join(t.TempDir(), "glossary.md")
	writeFixture(t, path, "**Ledger**\n: The ordered record of transactions.\n\n**Epoch**\n: A fixed span of consensus rounds.\n")

	out, _, err := runCLI(t, "glossary", path)
	if err != nil {
		t.Fatalf("glossary: %v", err)
	}
	requireContains(t, out, "Converted 2 terms.")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	requireContains(t, string(content), "## Ledger\nThe ordered record of transactions.")
	requireContains(t, string(content), "## Epoch\nA fixed span of consensus rounds.")
}

func TestGlossaryCommandSecondRunConvertsNothing(t *testing.T) {
	setupCLITestEnv(t)

	path := filepath.Join(t.TempDir(), "glossary.md")
	writeFixture(t, path, "**Nonce**\n: A replay protection counter.\n")

	if _, _, err := runCLI(t, "glossary", path); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, _, err := runCLI(t, "glossary", path)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	requireContains(t, out, "Converted 0 terms.")
}

func TestGlossaryCommandUsesConfiguredDefaultPath(t *testing.T) {
	setupCLITestEnv(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "terms.md")
	writeFixture(t, target, "**Stake**\n: Bonded voting weight.\n")

	configPath := filepath.Join(dir, "booklint.toml")
	writeFixture(t, configPath, "[glossary]\npath = \""+target+"\"\n")

	out, _, err := runCLI(t, "--config", configPath, "glossary")
	if err != nil {
		t.Fatalf("glossary with config: %v", err)
	}
	requireContains(t, out, "Converted 1 terms.")
}

func TestGlossaryCommandMissingFile(t *testing.T) {
	setupCLITestEnv(t)

	_, _, err := runCLI(t, "glossary", filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatal("expected error for missing glossary file")
	}
}
