package binfile

import (
	"sort"
)

// StructDef is a user type declared inside a file: instances of ID are
// decoded as the listed field tokens, in order.
type StructDef struct {
	ID     Token   `json:"id"`
	Fields []Token `json:"fields"`
}

// Registry holds the struct definitions of a single file. Definitions are
// only ever added; a later definition of the same id replaces the field
// list of the earlier one.
type Registry struct {
	defs map[Token]*StructDef
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[Token]*StructDef)}
}

// Define stores def and reports whether an earlier definition was replaced.
func (r *Registry) Define(def StructDef) bool {
	_, replaced := r.defs[def.ID]
	fields := make([]Token, len(def.Fields))
	copy(fields, def.Fields)
	r.defs[def.ID] = &StructDef{ID: def.ID, Fields: fields}
	return replaced
}

func (r *Registry) Lookup(id Token) (*StructDef, bool) {
	def, ok := r.defs[id]
	return def, ok
}

func (r *Registry) Len() int {
	return len(r.defs)
}

// Defs returns a copy of all definitions ordered by id.
func (r *Registry) Defs() []StructDef {
	result := make([]StructDef, 0, len(r.defs))
	for _, def := range r.defs {
		fields := make([]Token, len(def.Fields))
		copy(fields, def.Fields)
		result = append(result, StructDef{ID: def.ID, Fields: fields})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
