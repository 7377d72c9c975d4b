package main

import (
	"github.com/jcorbin/cellforth/internal/mem"
	"github.com/jcorbin/cellforth/internal/panicerr"
)

// VM is a threaded interpreter: input lines are parsed into statements of
// cells, which are then run under an instruction pointer.
type VM struct {
	Core

	dict Dictionary

	// The parameter stack holds the operands of most words.
	stack []int32

	// The return stack records the caller's instruction pointer for every
	// compound word call in progress.
	rstack []int32

	// The current statement, and the index of the cell being executed.
	stmt Statement
	ip   int

	// Snapshot of the parameter stack after the last successful line.
	last    []int32
	hasLast bool

	// Main memory, accessed by @ and !
	mem mem.Cells

	exit func(code int)
}

// Exec parses and runs one line of input. Stacks retain whatever the line
// left on them, even when it fails part way through.
func (vm *VM) Exec(line string) error {
	err := panicerr.Recover("exec", func() error {
		return vm.exec(line)
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (vm *VM) exec(line string) error {
	vm.logf(">", "exec %q", line)

	stmt, err := vm.parse(line)
	if err != nil {
		return err
	}

	vm.stmt, vm.ip = stmt, 0
	vm.rstack = vm.rstack[:0]
	if err := vm.run(); err != nil {
		vm.logf("#", "exec error: %v", err)
		vm.last, vm.hasLast = nil, false
		return err
	}

	vm.last = append(vm.last[:0:0], vm.stack...)
	vm.hasLast = true
	return nil
}

func (vm *VM) push(vals ...int32) {
	vm.stack = append(vm.stack, vals...)
}

func (vm *VM) pop() (int32, error) {
	i := len(vm.stack) - 1
	if i < 0 {
		return 0, ErrEmptyStack
	}
	val := vm.stack[i]
	vm.stack = vm.stack[:i]
	return val, nil
}

func (vm *VM) pop2() (a, b int32, err error) {
	if b, err = vm.pop(); err == nil {
		a, err = vm.pop()
	}
	return a, b, err
}

func (vm *VM) pop3() (a, b, c int32, err error) {
	if c, err = vm.pop(); err == nil {
		a, b, err = vm.pop2()
	}
	return a, b, c, err
}

// current returns the cell under the instruction pointer, if any.
func (vm *VM) current() (Cell, bool) {
	if vm.ip < 0 || vm.ip >= len(vm.stmt) {
		return Cell{}, false
	}
	return vm.stmt[vm.ip], true
}

func (vm *VM) hasNext() bool { return vm.ip+1 < len(vm.stmt) }
func (vm *VM) hasPrev() bool { return vm.ip > 0 && vm.ip <= len(vm.stmt) }

// Advance moves to the next cell and executes it.
func (vm *VM) Advance() error {
	if !vm.hasNext() {
		return jumpError{vm.ip, 1, len(vm.stmt)}
	}
	vm.ip++
	return vm.execCurrent()
}

// Retreat moves to the prior cell and executes it.
func (vm *VM) Retreat() error {
	if !vm.hasPrev() {
		return jumpError{vm.ip, -1, len(vm.stmt)}
	}
	vm.ip--
	return vm.execCurrent()
}

// Jump moves the instruction pointer by offset, relative to the current cell,
// without executing anything; execution resumes after the target cell.
func (vm *VM) Jump(offset int) error {
	target := vm.ip + offset
	if target < 0 || target >= len(vm.stmt) {
		return jumpError{vm.ip, offset, len(vm.stmt)}
	}
	vm.logf("~", "jump %+d -> %v", offset, target)
	vm.ip = target
	return nil
}

// run executes the current cell, and then every cell after it.
func (vm *VM) run() error {
	if len(vm.stmt) == 0 {
		return nil
	}
	if err := vm.execCurrent(); err != nil {
		return err
	}
	for vm.hasNext() {
		if err := vm.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func (vm *VM) execCurrent() error {
	c, ok := vm.current()
	if !ok {
		return jumpError{vm.ip, 0, len(vm.stmt)}
	}
	return vm.dispatch(c)
}

func (vm *VM) dispatch(c Cell) error {
	if vm.logfn != nil {
		vm.logf("@", "%v %v -- r:%v s:%v", vm.ip, c, vm.rstack, vm.stack)
	}

	if c.IsNumber() {
		vm.push(c.Number)
		return nil
	}

	ent := c.Entry
	if ent == nil {
		if ent = vm.dict.Lookup(c.Token); ent == nil {
			return wordError{c.Token, ErrWordNotFound}
		}
	}
	return ent.Code().run(vm)
}

// call runs a compound word body as a nested statement, restoring the
// caller's statement and instruction pointer afterward.
func (vm *VM) call(body Statement) error {
	if vm.logfn != nil {
		vm.logf("+", "call %v", body)
		defer vm.withLogPrefix("	")()
	}

	caller := vm.stmt
	vm.rstack = append(vm.rstack, int32(vm.ip))
	vm.stmt, vm.ip = body, 0

	err := vm.run()

	i := len(vm.rstack) - 1
	vm.stmt, vm.ip = caller, int(vm.rstack[i])
	vm.rstack = vm.rstack[:i]
	return err
}

// operand steps onto the cell after the current one, without executing it,
// returning its value; the cell must be a number.
func (vm *VM) operand() (int32, error) {
	if !vm.hasNext() {
		return 0, ErrExpectedNumber
	}
	vm.ip++
	c := vm.stmt[vm.ip]
	if !c.IsNumber() {
		return 0, wordError{c.Token, ErrExpectedNumber}
	}
	return c.Number, nil
}

// recall returns the last successful result snapshot.
func (vm *VM) recall() ([]int32, bool) {
	return vm.last, vm.hasLast
}
