package binfile

import (
	"bytes"
	"testing"
)

func TestPrinterNesting(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)

	p.ObjectOpen()
	p.ObjectOpen()
	if p.Indent() != 2 {
		t.Errorf("indent %d after two opens", p.Indent())
	}
	p.ArrayOpen()
	p.Plain("1")
	p.ArrayOpen()
	if p.Depth() != 2 {
		t.Errorf("depth %d after two array opens", p.Depth())
	}
	p.Plain("2")
	p.ArrayClose()
	p.Plain("3")
	p.ArrayClose()
	if p.Depth() != 0 {
		t.Errorf("depth %d after closing arrays", p.Depth())
	}
	p.ObjectClose()
	p.ObjectClose()
	if p.Indent() != 0 {
		t.Errorf("indent %d after closing objects", p.Indent())
	}

	// nested brackets keep the tabs of the outer line and drop the
	// separator after an inner close
	const expected = "{\n\t{\n\t\t[1\t\t[2]3]\n\t}\n}\n"
	if out.String() != expected {
		t.Errorf("got %q; expected %q", out.String(), expected)
	}
}

func TestPrinterObjectInsideArray(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)
	p.ArrayOpen()
	p.Plain("1")
	p.ObjectOpen()
	p.Plain("2")
	p.ObjectClose()
	p.ArrayClose()
	p.Plain("3")

	const expected = "[1, {, 2, }]\n3\n"
	if out.String() != expected {
		t.Errorf("got %q; expected %q", out.String(), expected)
	}
}

func TestPrinterUnbalancedClose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)
	p.ObjectClose()
	p.ArrayClose()
	if p.Indent() != 0 || p.Depth() != 0 {
		t.Errorf("indent %d depth %d", p.Indent(), p.Depth())
	}
	p.ObjectOpen()
	p.Plain("x")
	if out.String() != "}\n]\n{\n\tx\n" {
		t.Errorf("got %q", out.String())
	}
}

type failWriter struct{}

func (failWriter) Write(b []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestPrinterWriteError(t *testing.T) {
	p := NewPrinter(failWriter{}, false)
	p.Plain("x")
	if p.Err() != bytes.ErrTooLarge {
		t.Errorf("Err()=%v", p.Err())
	}
}

func TestFormatFloat(t *testing.T) {
	for _, test := range []struct {
		in  float32
		out string
	}{
		{1, "1.000000"},
		{-0.5, "-0.500000"},
		{1.0 / 3, "0.333333"},
		{260096, "260096.000000"},
	} {
		if s := FormatFloat(test.in); s != test.out {
			t.Errorf("FormatFloat(%v)=%q; expected %q", test.in, s, test.out)
		}
	}
}
