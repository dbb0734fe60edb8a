// Package glossary rewrites bold-term glossary entries into heading form.
//
// The conversion is a single multi-line substitution pass: a line holding
// only a bold term, immediately followed by a line starting with a colon and
// a space, becomes a level-two heading followed by the bare definition.
// Anything the pattern does not match is left byte-for-byte unchanged, so a
// malformed entry survives the rewrite untouched and unreported.
package glossary

import (
	"fmt"
	"os"
	"regexp"

	"github.com/gofrs/flock"

	"booklint/internal/fileutil"
)

// blockPattern matches one glossary entry. The term capture is non-greedy so
// a line carrying several bold spans does not over-match; the definition
// capture is greedy to end of line so trailing content is preserved.
var blockPattern = regexp.MustCompile(`(?m)^\*\*(.+?)\*\*\r?\n: (.+)$`)

// ConvertText rewrites every glossary block in text and returns the result
// along with the number of substitutions performed. The count is the sole
// success signal; entries the pattern misses are not flagged.
func ConvertText(text string) (string, int) {
	count := len(blockPattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return text, 0
	}
	return blockPattern.ReplaceAllString(text, "## $1\n$2"), count
}

// Convert reads the markdown file at path, rewrites its glossary blocks, and
// writes the result back to the same path. The write goes through a temp file
// renamed into place so a crash mid-write cannot leave a truncated glossary.
// An advisory lock guards against two conversions racing on the same file.
func Convert(path string) (int, error) {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire glossary lock: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("glossary %s is being converted by another process", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath)
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read glossary: %w", err)
	}

	converted, count := ConvertText(string(raw))
	if err := fileutil.WriteFileAtomic(path, []byte(converted)); err != nil {
		return 0, fmt.Errorf("write glossary: %w", err)
	}
	return count, nil
}
