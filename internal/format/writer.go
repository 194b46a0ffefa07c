package format

// Writer accumulates canonical output. Separators are requested, not written:
// the next non-empty write flushes at most one pending separator, so empty
// parts of the tree never leave stray blank lines.
type Writer struct {
	buf     []byte
	pending sep
}

type sep uint8

const (
	sepNone sep = iota
	sepSpace
	sepLine
	sepBlank
)

// NewWriter creates a writer with a capacity hint.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, max(sizeHint, 0))}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

// WriteString writes s after flushing the pending separator.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.flush()
	w.buf = append(w.buf, s...)
}

// Space requests a single space before the next write.
func (w *Writer) Space() { w.request(sepSpace) }

// Newline requests a line break before the next write.
func (w *Writer) Newline() { w.request(sepLine) }

// BlankLine requests an empty line before the next write.
func (w *Writer) BlankLine() { w.request(sepBlank) }

// Finish terminates non-empty output with exactly one '\n'.
func (w *Writer) Finish() {
	w.pending = sepNone
	if len(w.buf) > 0 {
		w.buf = append(w.buf, '\n')
	}
}

// request keeps the strongest separator; nothing is requested at the start.
func (w *Writer) request(s sep) {
	if len(w.buf) == 0 {
		return
	}
	w.pending = max(w.pending, s)
}

func (w *Writer) flush() {
	switch w.pending {
	case sepSpace:
		w.buf = append(w.buf, ' ')
	case sepLine:
		w.buf = append(w.buf, '\n')
	case sepBlank:
		w.buf = append(w.buf, '\n', '\n')
	}
	w.pending = sepNone
}
