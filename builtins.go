package main

func unaryOp(op func(a int32) int32) Native {
	return func(vm *VM) error {
		a, err := vm.pop()
		if err == nil {
			vm.push(op(a))
		}
		return err
	}
}

func binaryOp(op func(a, b int32) int32) Native {
	return func(vm *VM) error {
		a, b, err := vm.pop2()
		if err == nil {
			vm.push(op(a, b))
		}
		return err
	}
}

// divisionOp is a binaryOp that refuses a zero divisor.
func divisionOp(op func(a, b int32) int32) Native {
	return func(vm *VM) error {
		a, b, err := vm.pop2()
		if err != nil {
			return err
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		vm.push(op(a, b))
		return nil
	}
}

// Integer Operations

func add(a, b int32) int32 { return a + b }
func sub(a, b int32) int32 { return a - b }
func mul(a, b int32) int32 { return a * b }
func div(a, b int32) int32 { return a / b }
func rem(a, b int32) int32 { return a % b }

func max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func abs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

// ( a b c -- a*b/c ) with a double width intermediate product
func mulDiv(vm *VM) error {
	a, b, c, err := vm.pop3()
	if err != nil {
		return err
	}
	if c == 0 {
		return ErrDivisionByZero
	}
	vm.push(int32(int64(a) * int64(b) / int64(c)))
	return nil
}

// ( a b c -- a*b%c a*b/c ) with a double width intermediate product
func mulDivMod(vm *VM) error {
	a, b, c, err := vm.pop3()
	if err != nil {
		return err
	}
	if c == 0 {
		return ErrDivisionByZero
	}
	p := int64(a) * int64(b)
	vm.push(int32(p%int64(c)), int32(p/int64(c)))
	return nil
}

// Bitwise Operations

func and(a, b int32) int32    { return a & b }
func or(a, b int32) int32     { return a | b }
func xor(a, b int32) int32    { return a ^ b }
func lshift(a, b int32) int32 { return a << uint32(b) }
func rshift(a, b int32) int32 { return int32(uint32(a) >> uint32(b)) }
func not(a int32) int32       { return ^a }

// Comparisons

func less(a, b int32) int32    { return boolCell(a < b) }
func greater(a, b int32) int32 { return boolCell(a > b) }
func equal(a, b int32) int32   { return boolCell(a == b) }

// Stack Operations

// ( a -- a a )
func dup(vm *VM) error {
	a, err := vm.pop()
	if err == nil {
		vm.push(a, a)
	}
	return err
}

// ( a -- a a ) if a is non-zero, otherwise ( 0 -- 0 )
func qdup(vm *VM) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	vm.push(a)
	if a != 0 {
		vm.push(a)
	}
	return nil
}

// ( a -- )
func drop(vm *VM) error {
	_, err := vm.pop()
	return err
}

// ( a b -- a b a )
func over(vm *VM) error {
	a, b, err := vm.pop2()
	if err == nil {
		vm.push(a, b, a)
	}
	return err
}

// ( a b -- b a )
func swap(vm *VM) error {
	a, b, err := vm.pop2()
	if err == nil {
		vm.push(b, a)
	}
	return err
}

// ( a b c -- b c a )
func rot(vm *VM) error {
	a, b, c, err := vm.pop3()
	if err == nil {
		vm.push(b, c, a)
	}
	return err
}

// ( -- last... ) pushes the stack as it was after the last successful line
func recallLast(vm *VM) error {
	last, ok := vm.recall()
	if !ok {
		return ErrEmptyStack
	}
	vm.push(last...)
	return nil
}

// Input/Output Operations

// ( n -- ) print a number
func dot(vm *VM) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	return vm.printf("%d ", a)
}

func cr(vm *VM) error { return vm.writeRune('\n') }

// ( c -- ) write a single byte character
func emit(vm *VM) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if a < 0 || a > 0xff {
		return charError(a)
	}
	return vm.writeRune(rune(a))
}

// print the stacks, leaving them unchanged
func dump(vm *VM) error { return vmDumper{vm: vm, out: vm.out}.dumpStacks() }

// ( -- ) print the parameter stack like "<3> 1 2 3 "
func dotS(vm *VM) error {
	return vmDumper{vm: vm, out: vm.out}.dumpStackLine()
}

// print every defined word name
func words(vm *VM) error { return vmDumper{vm: vm, out: vm.out}.dumpNames() }

// Memory Operations

func memAddr(a int32) (uint, error) {
	if a < 0 {
		return 0, addrError(a)
	}
	return uint(a), nil
}

// ( addr -- n )
func fetch(vm *VM) error {
	a, err := vm.pop()
	if err != nil {
		return err
	}
	addr, err := memAddr(a)
	if err != nil {
		return err
	}
	val, err := vm.mem.Load(addr)
	if err == nil {
		vm.push(val)
	}
	return err
}

// ( n addr -- )
func store(vm *VM) error {
	n, a, err := vm.pop2()
	if err != nil {
		return err
	}
	addr, err := memAddr(a)
	if err != nil {
		return err
	}
	return vm.mem.Stor(addr, n)
}

// ( n addr -- )
func addStore(vm *VM) error {
	n, a, err := vm.pop2()
	if err != nil {
		return err
	}
	addr, err := memAddr(a)
	if err != nil {
		return err
	}
	val, err := vm.mem.Load(addr)
	if err != nil {
		return err
	}
	return vm.mem.Stor(addr, val+n)
}

// Control Flow

// branch jumps by the offset in the following cell.
func branch(vm *VM) error {
	offset, err := vm.operand()
	if err != nil {
		return err
	}
	return vm.Jump(int(offset))
}

// ?branch pops a flag, and jumps by the offset in the following cell only if
// the flag is TRUE; otherwise the offset cell is skipped.
func qbranch(vm *VM) error {
	flag, err := vm.pop()
	if err != nil {
		return err
	}
	offset, err := vm.operand()
	if err != nil || flag != True {
		return err
	}
	return vm.Jump(int(offset))
}

// bye ends the process successfully.
func bye(vm *VM) error {
	if err := vm.out.Flush(); err != nil {
		return err
	}
	vm.logf("#", "bye")
	vm.exit(0)
	return errHalt
}

var builtinWords = []struct {
	name string
	code Native
}{
	{"+", binaryOp(add)},
	{"-", binaryOp(sub)},
	{"*", binaryOp(mul)},
	{"/", divisionOp(div)},
	{"mod", divisionOp(rem)},
	{"*/", mulDiv},
	{"*/mod", mulDivMod},
	{"negate", unaryOp(func(a int32) int32 { return -a })},
	{"abs", unaryOp(abs)},
	{"max", binaryOp(max)},
	{"min", binaryOp(min)},

	{"and", binaryOp(and)},
	{"or", binaryOp(or)},
	{"xor", binaryOp(xor)},
	{"lshift", binaryOp(lshift)},
	{"rshift", binaryOp(rshift)},
	{"not", unaryOp(not)},

	{"<", binaryOp(less)},
	{">", binaryOp(greater)},
	{"=", binaryOp(equal)},
	{"0<", unaryOp(func(a int32) int32 { return boolCell(a < 0) })},
	{"0>", unaryOp(func(a int32) int32 { return boolCell(a > 0) })},
	{"0=", unaryOp(func(a int32) int32 { return boolCell(a == 0) })},

	{"dup", dup},
	{"?dup", qdup},
	{"drop", drop},
	{"over", over},
	{"swap", swap},
	{"rot", rot},
	{"$", recallLast},

	{"1+", unaryOp(func(a int32) int32 { return a + 1 })},
	{"1-", unaryOp(func(a int32) int32 { return a - 1 })},
	{"2+", unaryOp(func(a int32) int32 { return a + 2 })},
	{"2-", unaryOp(func(a int32) int32 { return a - 2 })},
	{"2*", unaryOp(func(a int32) int32 { return a << 1 })},
	{"2/", unaryOp(func(a int32) int32 { return a >> 1 })},

	{".", dot},
	{"cr", cr},
	{"emit", emit},
	{"dump", dump},
	{".s", dotS},
	{"words", words},

	{"@", fetch},
	{"!", store},
	{"+!", addStore},

	{"branch", branch},
	{"?branch", qbranch},
	{":", define},
	{";", semicolon},

	{"bye", bye},
}

func (vm *VM) compileBuiltins() {
	for _, word := range builtinWords {
		vm.dict.Insert(NewEntry(word.name, word.code))
	}

	// square checks that compound words work from the start
	vm.dict.Insert(NewEntry("square", Compound{
		WordCell(vm.dict.Lookup("dup")),
		WordCell(vm.dict.Lookup("*")),
	}))
}
