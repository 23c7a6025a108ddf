package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery pairs a capability probe with the canned reply a real
// terminal would send back.
type terminalQuery struct {
	probe []byte
	reply []byte
}

var terminalQueries = []terminalQuery{
	{probe: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{probe: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{probe: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{probe: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{probe: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// terminalResponder answers the probes lipgloss and bubbletea send at start-up
// so programs do not stall waiting on a PTY that never replies.
type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	// Keep a tail for probes split across reads.
	if len(tr.buf) > 256 {
		tr.buf = tr.buf[len(tr.buf)-64:]
	}
}

// answerNext replies to the earliest pending probe in the buffer.
func (tr *terminalResponder) answerNext() bool {
	first, at := -1, len(tr.buf)
	for i, q := range terminalQueries {
		if idx := bytes.Index(tr.buf, q.probe); idx >= 0 && idx < at {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	q := terminalQueries[first]
	tr.buf = tr.buf[at+len(q.probe):]
	_, _ = tr.w.Write(q.reply)
	return true
}
