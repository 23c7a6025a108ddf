package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen repaint cut out of the PTY stream.
type Frame struct {
	Index int
	// ANSI keeps the styling escapes of the repaint; Plain is the text a
	// user would read, with trailing blanks trimmed.
	ANSI  string
	Plain string
}

// escapeSequence matches CSI, OSC and single-byte charset shifts.
var escapeSequence = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)|[\x0e\x0f]`)

const cursorHome = "\x1b[H"

// repaintBoundary reports whether seq starts a fresh screen: an erase of the
// display or a switch into or out of the alternate screen.
func repaintBoundary(seq string) bool {
	switch seq {
	case "\x1b[J", "\x1b[0J", "\x1b[2J", "\x1b[3J", "\x1b[?1049h", "\x1b[?1049l":
		return true
	}
	return false
}

type frameSplitter struct {
	frames []Frame
	ansi   strings.Builder
	plain  strings.Builder
}

func (s *frameSplitter) escape(seq string) {
	if repaintBoundary(seq) {
		s.flush()
		return
	}
	if seq == cursorHome && s.ansi.Len() == 0 {
		return
	}
	s.ansi.WriteString(seq)
}

func (s *frameSplitter) text(chunk string) {
	s.ansi.WriteString(chunk)
	s.plain.WriteString(chunk)
}

func (s *frameSplitter) flush() {
	plain := normalizeLines(s.plain.String())
	if strings.TrimSpace(plain) != "" {
		s.frames = append(s.frames, Frame{Index: len(s.frames), ANSI: s.ansi.String(), Plain: plain})
	}
	s.ansi.Reset()
	s.plain.Reset()
}

func parseFrames(raw []byte) []Frame {
	stream := strings.NewReplacer("\r", "", "\x00", "").Replace(string(raw))
	var s frameSplitter
	last := 0
	for _, loc := range escapeSequence.FindAllStringIndex(stream, -1) {
		s.text(stream[last:loc[0]])
		s.escape(stream[loc[0]:loc[1]])
		last = loc[1]
	}
	s.text(stream[last:])
	s.flush()
	return s.frames
}

// plainText drops every escape sequence and carriage return from s.
func plainText(s string) string {
	return escapeSequence.ReplaceAllString(strings.ReplaceAll(s, "\r", ""), "")
}

// FinalFrame returns the last repaint, or false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// LastFrameContaining returns the newest frame whose plain text contains text.
func (r *Recording) LastFrameContaining(text string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for i := len(r.Frames) - 1; i >= 0; i-- {
		if strings.Contains(r.Frames[i].Plain, text) {
			return r.Frames[i], true
		}
	}
	return Frame{}, false
}

// Contains reports whether text was drawn at any point, regardless of how the
// renderer split the stream into frames.
func (r *Recording) Contains(text string) bool {
	if r == nil {
		return false
	}
	return strings.Contains(plainText(string(r.Raw)), text)
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	end := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
		if strings.TrimSpace(lines[i]) != "" {
			end = i + 1
		}
	}
	return strings.Join(lines[:end], "\n")
}
