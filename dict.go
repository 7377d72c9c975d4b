package main

import "sort"

// Code implements the behavior of a dictionary entry.
type Code interface {
	run(vm *VM) error
}

// Native code is a Go function run directly against the VM.
type Native func(vm *VM) error

// Compound code is a compiled sequence of cells, run as a nested statement
// that shares the VM's stacks.
type Compound Statement

func (fn Native) run(vm *VM) error     { return fn(vm) }
func (body Compound) run(vm *VM) error { return vm.call(Statement(body)) }

// Entry binds a name to its code. Entries are never modified after creation;
// redefining a name inserts a new entry, leaving any cells that reference
// the old one unchanged.
type Entry struct {
	name string
	code Code
}

// NewEntry creates a new dictionary entry.
func NewEntry(name string, code Code) *Entry {
	return &Entry{name: name, code: code}
}

// Name returns the entry's name.
func (ent *Entry) Name() string { return ent.name }

// Code returns the entry's code.
func (ent *Entry) Code() Code { return ent.code }

// Equal compares entries by name, not by identity or code.
func (ent *Entry) Equal(other *Entry) bool {
	if ent == nil || other == nil {
		return ent == other
	}
	return ent.name == other.name
}

func (ent *Entry) String() string { return ent.name }

// Dictionary maps names to their most recently inserted entry.
type Dictionary struct {
	entries map[string]*Entry
}

// Lookup returns the current entry for name, or nil if there is none.
func (dict *Dictionary) Lookup(name string) *Entry {
	return dict.entries[name]
}

// Insert adds ent, replacing any prior entry of the same name.
func (dict *Dictionary) Insert(ent *Entry) {
	if dict.entries == nil {
		dict.entries = make(map[string]*Entry)
	}
	dict.entries[ent.name] = ent
}

// Len returns the number of defined names.
func (dict *Dictionary) Len() int { return len(dict.entries) }

// Names returns all defined names in sorted order.
func (dict *Dictionary) Names() []string {
	names := make([]string, 0, len(dict.entries))
	for name := range dict.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
