package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_vmDumper(t *testing.T) {
	vm := New()
	assert.NoError(t, vm.Exec(": sq dup * ; 3 sq 100 100 !"))

	var out strings.Builder
	assert.NoError(t, vmDumper{vm: vm, out: &out}.dump())
	dump := out.String()

	assert.Contains(t, dump, "# VM Dump\n")
	assert.Contains(t, dump, "  stack: [9]\n")
	assert.Contains(t, dump, "  rstack: []\n")
	assert.Contains(t, dump, "  last: [9]\n")
	assert.Contains(t, dump, "  mem: 256\n")
	assert.Contains(t, dump, "  : sq dup * ;\n")
	assert.Contains(t, dump, "  : square dup * ;\n")
	assert.Contains(t, dump, "  dup <native>\n")
}

func Test_vmDumper_formatStatement(t *testing.T) {
	stmt := Statement{NumberCell(1), NumberCell(2), {Token: "x"}}
	var dump vmDumper
	assert.Equal(t, "1 [2] x?", dump.formatStatement(stmt, 1))
	assert.Equal(t, "1 2 x?", dump.formatStatement(stmt, 3))
}

func Test_words(t *testing.T) {
	var out strings.Builder
	vm := New(WithOutput(&out))
	assert.NoError(t, vm.Exec(": zz ; words"))
	names := strings.Fields(out.String())
	assert.Equal(t, vm.dict.Len(), len(names))
	assert.Contains(t, names, "square")
	assert.Contains(t, names, "zz")
	assert.Contains(t, names, "?branch")
}
