package binfile

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/mogaika/bindump/config"
	"github.com/mogaika/bindump/utils"
)

// MaxDepth bounds struct expansion. Only a struct that lists itself as a
// field can get this deep; arrays always consume input per level.
const MaxDepth = 1024

// UnknownTokenError is returned for a token with no meaning under Config.
type UnknownTokenError struct {
	Token  Token
	Offset int
	Config config.Config
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("Unknown token type 0x%02x at offset 0x%x, did you specify the game and platform? (using %v)",
		uint8(e.Token), e.Offset, e.Config)
}

// Decoder walks one file token by token. Each file needs its own Decoder:
// struct definitions and printer state never carry over.
type Decoder struct {
	cfg config.Config
	bs  *utils.BufStack
	reg *Registry
	p   *Printer

	structDepth int
	arrayDepth  int
}

// NewDecoder starts a decoder with an empty struct registry.
func NewDecoder(cfg config.Config, bs *utils.BufStack, p *Printer) *Decoder {
	return &Decoder{
		cfg: cfg,
		bs:  bs,
		reg: NewRegistry(),
		p:   p,
	}
}

// Registry returns the struct definitions seen so far.
func (d *Decoder) Registry() *Registry {
	return d.reg
}

// Decode reads tokens until the end of the stream.
func (d *Decoder) Decode() error {
	for !d.bs.EOF() {
		if err := d.next(); err != nil {
			return err
		}
	}
	return d.p.Err()
}

func (d *Decoder) readToken() (Token, int, error) {
	pos := d.bs.Pos()
	b, err := d.bs.ReadByte()
	return Token(b), pos, err
}

func (d *Decoder) next() error {
	t, pos, err := d.readToken()
	if err != nil {
		return err
	}
	return d.dispatch(t, pos)
}

// dispatch decodes one item of type t. pos is where t was read, or for
// array elements and struct fields, where their type was declared.
func (d *Decoder) dispatch(t Token, pos int) error {
	a := Resolve(d.cfg, d.reg, t)
	switch a {
	case ACTION_UNKNOWN:
		return &UnknownTokenError{Token: t, Offset: pos, Config: d.cfg}
	case ACTION_STRING:
		return d.decodeString()
	case ACTION_OBJECT_OPEN:
		d.p.ObjectOpen()
	case ACTION_OBJECT_CLOSE:
		d.p.ObjectClose()
	case ACTION_ARRAY_OPEN:
		d.p.ArrayOpen()
	case ACTION_ARRAY_CLOSE:
		d.p.ArrayClose()
	case ACTION_ARRAY:
		return d.decodeArray()
	case ACTION_STRUCT_DEF:
		return d.decodeStructDef()
	case ACTION_STRUCT_INSTANCE:
		return d.decodeStructInstance(t, pos)
	case ACTION_BLOCK:
		d.p.Block(t)
	default:
		prim, ok := primitives[a]
		if !ok {
			return errors.Errorf("No reader for %v (token 0x%02x at offset 0x%x)", a, uint8(t), pos)
		}
		value, err := prim.read(d.bs)
		if err != nil {
			return errors.Wrapf(err, "Failed to read %v", a)
		}
		if prim.tag == "" {
			d.p.Plain(value)
		} else {
			d.p.Typed(prim.tag, value)
		}
	}
	return nil
}

func (d *Decoder) decodeString() error {
	raw, err := d.bs.ReadZString()
	if err != nil {
		return errors.Wrapf(err, "Failed to read string")
	}
	s, err := utils.BytesToString(d.cfg.Encoding, raw)
	if err != nil {
		return err
	}
	d.p.Quoted(s)
	return nil
}

func (d *Decoder) decodeArray() error {
	count, err := d.bs.ReadLU16()
	if err != nil {
		return errors.Wrapf(err, "Failed to read array length")
	}
	elem, pos, err := d.readToken()
	if err != nil {
		return errors.Wrapf(err, "Failed to read array type")
	}
	d.arrayDepth++
	defer func() { d.arrayDepth-- }()
	for i := 0; i < int(count); i++ {
		if err := d.dispatch(elem, pos); err != nil {
			// only the outermost array names the element
			if d.arrayDepth > 1 {
				return err
			}
			return errors.Wrapf(err, "Array element %d/%d", i, count)
		}
	}
	return nil
}

func (d *Decoder) decodeStructDef() error {
	id, pos, err := d.readToken()
	if err != nil {
		return errors.Wrapf(err, "Failed to read struct id")
	}
	count, err := d.bs.ReadByte()
	if err != nil {
		return errors.Wrapf(err, "Failed to read struct 0x%02x length", uint8(id))
	}
	raw, err := d.bs.Read(int(count))
	if err != nil {
		return errors.Wrapf(err, "Failed to read struct 0x%02x fields", uint8(id))
	}

	def := StructDef{ID: id, Fields: make([]Token, count)}
	for i, b := range raw {
		f := Token(b)
		if Resolve(d.cfg, d.reg, f) == ACTION_UNKNOWN {
			return errors.Errorf("Struct 0x%02x at offset 0x%x: field %d type 0x%02x does not resolve",
				uint8(id), pos, i, uint8(f))
		}
		def.Fields[i] = f
	}

	if d.reg.Define(def) {
		log.Printf("[binfile] %s: struct 0x%02x redefined at offset 0x%x", d.bs.Name(), uint8(id), pos)
	}
	return nil
}

func (d *Decoder) decodeStructInstance(t Token, pos int) error {
	d.structDepth++
	defer func() { d.structDepth-- }()
	if d.structDepth > MaxDepth {
		return errors.Errorf("Nesting deeper than %d expanding struct 0x%02x at offset 0x%x", MaxDepth, uint8(t), pos)
	}

	def, _ := d.reg.Lookup(t)
	for i, f := range def.Fields {
		if err := d.dispatch(f, pos); err != nil {
			if d.structDepth > 1 {
				return err
			}
			return errors.Wrapf(err, "Struct 0x%02x field %d", uint8(t), i)
		}
	}
	return nil
}

// Decode renders a whole file to w and returns the struct definitions it
// declared. On error, everything decoded up to the failure has already
// been written.
func Decode(cfg config.Config, name string, data []byte, w io.Writer, color bool) (*Registry, error) {
	d := NewDecoder(cfg, utils.NewBufStack(name, data), NewPrinter(w, color))
	err := d.Decode()
	return d.Registry(), err
}
