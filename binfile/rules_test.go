package binfile

import (
	"testing"

	"github.com/mogaika/bindump/config"
)

var resolveTests = []struct {
	cfg config.Config
	tok Token
	out Action
}{
	{lrPC, 0x02, ACTION_STRING},
	{nbaPSX, 0x04, ACTION_INT},
	{nbaPC, 0x0e, ACTION_USHORT},
	{lrPC, 0x03, ACTION_FLOAT},
	{lrN64, 0x03, ACTION_FLOAT},
	{lrPSX, 0x03, ACTION_Q20_12},
	{nbaPSX, 0x03, ACTION_Q20_12},
	{pbPC, 0x0b, ACTION_Q4_4},
	{nbaPC, 0x0b, ACTION_UNKNOWN},
	{lrPC, 0x0f, ACTION_UNKNOWN},
	{lrPSX, 0x0f, ACTION_Q4_12},
	{pbN64, 0x10, ACTION_Q11_5},
	{nbaPSX, 0x10, ACTION_UNKNOWN},
	{lrN64, 0x12, ACTION_BYTEN},
	{lrPC, 0x12, ACTION_UNKNOWN},
	{nbaPC, 0x12, ACTION_ARRAY},
	{nbaPSX, 0x12, ACTION_ARRAY},
	{pbPC, 0x11, ACTION_UNKNOWN_11},
	{lrPC, 0x11, ACTION_UNKNOWN},
	{pbN64, 0x13, ACTION_UNKNOWN_13},
	{lrPC, 0x14, ACTION_ARRAY},
	{nbaPC, 0x14, ACTION_STRUCT_DEF},
	{lrPC, 0x16, ACTION_STRUCT_DEF},
	{nbaPC, 0x16, ACTION_UNKNOWN},
	{lrPC, 0x26, ACTION_UNKNOWN},
	{lrPC, 0x27, ACTION_BLOCK},
	{pbN64, 0xff, ACTION_BLOCK},
	{nbaPC, 0x25, ACTION_BLOCK},
	{nbaPC, 0x24, ACTION_UNKNOWN},
	{lrPC, 0x00, ACTION_UNKNOWN},
}

func TestResolve(t *testing.T) {
	for _, test := range resolveTests {
		if a := Resolve(test.cfg, nil, test.tok); a != test.out {
			t.Errorf("Resolve(%v,%v)=%v; expected %v", test.cfg, test.tok, a, test.out)
		}
	}
}

func TestResolveRegistryFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Define(StructDef{ID: 0x20, Fields: []Token{0x04}})
	// built-in meaning wins over a struct declared with the same id
	reg.Define(StructDef{ID: 0x27, Fields: []Token{0x04}})
	reg.Define(StructDef{ID: 0x12, Fields: []Token{0x04}})

	for _, test := range []struct {
		cfg config.Config
		tok Token
		out Action
	}{
		{lrPC, 0x20, ACTION_STRUCT_INSTANCE},
		{lrPC, 0x27, ACTION_BLOCK},
		{lrPC, 0x12, ACTION_STRUCT_INSTANCE},
		{lrN64, 0x12, ACTION_BYTEN},
		{nbaPC, 0x12, ACTION_ARRAY},
		{lrPC, 0x21, ACTION_UNKNOWN},
	} {
		if a := Resolve(test.cfg, reg, test.tok); a != test.out {
			t.Errorf("Resolve(%v,%v)=%v; expected %v", test.cfg, test.tok, a, test.out)
		}
	}
}

func TestRegistryDefs(t *testing.T) {
	reg := NewRegistry()
	fields := []Token{0x0c, 0x02}
	if reg.Define(StructDef{ID: 0x21, Fields: fields}) {
		t.Errorf("first definition reported as replacement")
	}
	fields[0] = 0xff
	reg.Define(StructDef{ID: 0x20, Fields: []Token{0x04}})
	if !reg.Define(StructDef{ID: 0x20, Fields: []Token{0x0e}}) {
		t.Errorf("redefinition not reported")
	}

	defs := reg.Defs()
	if len(defs) != 2 || defs[0].ID != 0x20 || defs[1].ID != 0x21 {
		t.Fatalf("Defs()=%v", defs)
	}
	if defs[0].Fields[0] != 0x0e {
		t.Errorf("0x20 fields %v", defs[0].Fields)
	}
	if defs[1].Fields[0] != 0x0c {
		t.Errorf("registry shares caller slice: %v", defs[1].Fields)
	}
}

func TestTokenText(t *testing.T) {
	if s := Token(0x0c).String(); s != "0x0c" {
		t.Errorf("String()=%q", s)
	}
	if ACTION_Q20_12.String() != "Q20.12" || Action(99).String() != "action(99)" {
		t.Errorf("unexpected action names")
	}
}
