package printer

// Writer accumulates rendered output and provides helpers for indentation
// and canonical whitespace.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a rendering writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.buf = append(w.buf, '\t')
		}
	} else {
		spaceCount := w.indentLevel * w.opt.IndentWidth
		for range spaceCount {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.updateLineState(s[len(s)-1])
}

// WriteByte writes a single byte to the output.
func (w *Writer) WriteByte(b byte) error {
	w.writeIndent()
	w.buf = append(w.buf, b)
	w.updateLineState(b)
	return nil
}

func (w *Writer) updateLineState(last byte) {
	w.atLineStart = last == '\n'
}

// Space writes a single space unless the output already ends with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline unless the output already ends with one.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// BlankLine guarantees an empty line before the next write.
func (w *Writer) BlankLine() {
	if len(w.buf) == 0 {
		return
	}
	w.Newline()
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
