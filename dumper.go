package main

import (
	"fmt"
	"io"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() error {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	fmt.Fprintf(dump.out, "  stmt: %v\n", dump.formatStatement(dump.vm.stmt, dump.vm.ip))
	if err := dump.dumpStacks(); err != nil {
		return err
	}
	if last, ok := dump.vm.recall(); ok {
		fmt.Fprintf(dump.out, "  last: %v\n", last)
	}
	if size := dump.vm.mem.Size(); size > 0 {
		fmt.Fprintf(dump.out, "  mem: %v\n", size)
	}
	return dump.dumpDict()
}

func (dump vmDumper) dumpStacks() error {
	if _, err := fmt.Fprintf(dump.out, "  stack: %v\n", formatInts(dump.vm.stack)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(dump.out, "  rstack: %v\n", formatInts(dump.vm.rstack))
	return err
}

func (dump vmDumper) dumpStackLine() error {
	stack := dump.vm.stack
	var sb strings.Builder
	fmt.Fprintf(&sb, "<%v> ", len(stack))
	for _, val := range stack {
		fmt.Fprintf(&sb, "%v ", val)
	}
	_, err := io.WriteString(dump.out, sb.String())
	return err
}

func (dump vmDumper) dumpNames() error {
	_, err := io.WriteString(dump.out, strings.Join(dump.vm.dict.Names(), " ")+"\n")
	return err
}

func (dump vmDumper) dumpDict() error {
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, name := range dump.vm.dict.Names() {
		var err error
		switch code := dump.vm.dict.Lookup(name).Code().(type) {
		case Compound:
			_, err = fmt.Fprintf(dump.out, "  : %v %v ;\n", name, Statement(code))
		default:
			_, err = fmt.Fprintf(dump.out, "  %v <native>\n", name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// formatStatement writes the statement with the cell at ip bracketed.
func (dump vmDumper) formatStatement(stmt Statement, ip int) string {
	var sb strings.Builder
	for i, c := range stmt {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i == ip {
			sb.WriteByte('[')
			sb.WriteString(c.String())
			sb.WriteByte(']')
		} else {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

func formatInts(vals []int32) string {
	if len(vals) == 0 {
		return "[]"
	}
	return fmt.Sprint(vals)
}
