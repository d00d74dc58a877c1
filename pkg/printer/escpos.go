package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Alignment values for SetAlign
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character sizes for SetFontSize
const (
	FontNormal = 0x00
	FontDouble = 0x11
	FontWide   = 0x10
	FontTall   = 0x01
)

// Document accumulates an ESC/POS byte stream. Methods chain.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument starts a document for a printer with charWidth columns
// (32 for 58mm paper, 48 for 80mm).
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Width is the number of printable columns
func (d *Document) Width() int {
	return d.width
}

// Init writes ESC @
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes s and a line feed
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Wrapped writes s broken on spaces so no line exceeds the paper width.
// Words longer than a line are split.
func (d *Document) Wrapped(s string) *Document {
	for _, line := range wrap(s, d.width) {
		d.Text(line)
	}
	return d
}

// Separator fills one line with char
func (d *Document) Separator(char byte) *Document {
	return d.Text(strings.Repeat(string(char), d.width))
}

// KeyValue puts key on the left and value flush right, e.g.
// "Subtotal                 1000.00"
func (d *Document) KeyValue(key, value string) *Document {
	return d.Text(justify(key, value, d.width))
}

// ItemLine prints "2x Paneer Tikka          600.00". A name too long for
// the line continues on the following lines.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx ", qty)
	room := d.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(total) - 1
	lines := wrap(name, room)
	if len(lines) == 0 {
		lines = []string{""}
	}
	d.Text(justify(prefix+lines[0], total, d.width))
	indent := strings.Repeat(" ", utf8.RuneCountInString(prefix))
	for _, l := range lines[1:] {
		d.Text(indent + l)
	}
	return d
}

// QRCode prints data as a native QR symbol (GS ( k, model 2). size is the
// module size from 1 to 16.
func (d *Document) QRCode(data string, size byte) *Document {
	if size < 1 {
		size = 1
	}
	if size > 16 {
		size = 16
	}
	// model 2
	d.buf.Write([]byte{GS, '(', 'k', 4, 0, 0x31, 0x41, 0x32, 0x00})
	// module size
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 0x31, 0x43, size})
	// error correction level M
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 0x31, 0x45, 0x31})
	// store data
	n := len(data) + 3
	d.buf.Write([]byte{GS, '(', 'k', byte(n % 256), byte(n / 256), 0x31, 0x50, 0x30})
	d.buf.WriteString(data)
	// print
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 0x31, 0x51, 0x30})
	d.buf.WriteByte(LF)
	return d
}

// Cut performs a full cut
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the stream built so far
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset discards the content and writes a fresh init command
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}

func justify(left, right string, width int) string {
	spaces := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
