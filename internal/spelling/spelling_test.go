package spelling_test

import (
	"testing"

	"booklint/internal/spelling"
)

func TestCheckFlagsKnownMisspellings(t *testing.T) {
	issues := spelling.Check("An error occured during setup. We recieve data later.")
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %v", len(issues), issues)
	}
	if issues[0].Word != "occured" || issues[0].Correction != "occurred" {
		t.Fatalf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Word != "recieve" || issues[1].Correction != "receive" {
		t.Fatalf("unexpected second issue: %+v", issues[1])
	}
}

func TestCheckIsCaseInsensitive(t *testing.T) {
	issues := spelling.Check("OCCURED")
	if len(issues) != 1 || issues[0].Correction != "occurred" {
		t.Fatalf("expected occurred correction, got %v", issues)
	}
}

func TestCheckReportsRepeatedWordOnce(t *testing.T) {
	issues := spelling.Check("occured again occured and occured")
	if len(issues) != 1 {
		t.Fatalf("expected repeated word to be reported once, got %v", issues)
	}
}

func TestCheckIgnoresCorrectWords(t *testing.T) {
	issues := spelling.Check("the blockchain validator received data separately")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

// Membership in the allowed-word set has no effect on detection; the check
// consults the misspelling table only.
func TestAllowedWordsAreNotConsulted(t *testing.T) {
	if !spelling.Allowed("blockchain") {
		t.Fatal("expected blockchain in the allowed set")
	}
	// especiallly is both allowed and a known misspelling; the table wins.
	if !spelling.Allowed("especiallly") {
		t.Fatal("expected especiallly in the allowed set")
	}
	issues := spelling.Check("especiallly")
	if len(issues) != 1 || issues[0].Correction != "especially" {
		t.Fatalf("expected especiallly flagged despite allowed-set membership, got %v", issues)
	}
}
