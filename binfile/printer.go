package binfile

import (
	"fmt"
	"io"
	"strings"
)

const (
	colorRed     = "\x1b[31m"
	colorGreen   = "\x1b[32m"
	colorCyan    = "\x1b[36m"
	colorDefault = "\x1b[39m"
)

// Printer renders decoded items as nested text.
//
// Outside of arrays every item ends its own line and is indented by the
// object depth. Inside arrays items are joined with ", " on the line of
// the opening bracket.
type Printer struct {
	w     io.Writer
	color bool
	err   error

	indent int
	depth  int
	// siblings is -1 right after a bracket, so the first item after it
	// gets no separator.
	siblings int
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) Indent() int {
	return p.indent
}

func (p *Printer) Depth() int {
	return p.depth
}

func (p *Printer) write(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *Printer) print(msg string) {
	indent := p.indent
	if (p.depth > 0 && msg[0] != '[') || (p.depth == 0 && msg[0] == ']') {
		indent = 0
	}

	var sb strings.Builder
	for i := 0; i < indent; i++ {
		sb.WriteByte('\t')
	}
	if p.depth > 0 && p.siblings > 0 {
		sb.WriteString(", ")
	}
	sb.WriteString(msg)
	if p.depth == 0 {
		sb.WriteByte('\n')
	}
	p.write(sb.String())
	p.siblings++
}

func (p *Printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return color + s + colorDefault
}

func (p *Printer) Quoted(s string) {
	p.print(p.paint(colorRed, `"`+s+`"`))
}

// Typed prints a value annotated with its storage type.
func (p *Printer) Typed(tag string, value string) {
	p.print("(" + p.paint(colorCyan, tag) + ") " + value)
}

func (p *Printer) Plain(value string) {
	p.print(value)
}

func (p *Printer) Block(t Token) {
	p.print(p.paint(colorGreen, fmt.Sprintf("Block 0x%02X:", uint8(t))))
}

func (p *Printer) ObjectOpen() {
	p.print("{")
	p.indent++
}

func (p *Printer) ObjectClose() {
	if p.indent > 0 {
		p.indent--
	}
	p.print("}")
}

func (p *Printer) ArrayOpen() {
	p.siblings = -1
	p.depth++
	p.print("[")
}

func (p *Printer) ArrayClose() {
	p.siblings = -1
	if p.depth > 0 {
		p.depth--
	}
	p.print("]")
}
