// Package draft loads email text from disk so the form can start prefilled.
package draft

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const maxDraftBytes = 512 << 10

// ErrNotText is returned when the file does not look like plain text.
var ErrNotText = errors.New("draft is not a text file")

// Load reads path and returns its content as email text. Binary content
// (PDF, images, archives) is rejected by sniffing the leading bytes.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat draft: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("draft %s is a directory", path)
	}
	if info.Size() > maxDraftBytes {
		return "", fmt.Errorf("draft %s is larger than %d bytes", path, maxDraftBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}
	mtype := mimetype.Detect(data)
	if !isText(mtype) {
		return "", fmt.Errorf("%w: %s detected as %s", ErrNotText, path, mtype.String())
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") || m.Is("message/rfc822") {
			return true
		}
	}
	return false
}
