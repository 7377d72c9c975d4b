package main

// define implements ":" by scanning forward through the statement that is
// currently running: the next cell names the new word, and every cell after
// that up to ";" is classified anew against the dictionary to form its body.
// Execution then continues after the ";".
//
// Body words are bound to their entries as of now; redefining one of them
// later does not change the word being defined here.
func define(vm *VM) error {
	if !vm.hasNext() {
		return ErrWordNameNotFound
	}
	vm.ip++
	name := vm.stmt[vm.ip].Token

	var body Statement
	for {
		if !vm.hasNext() {
			return wordError{name, ErrUnterminatedWordDefinition}
		}
		vm.ip++
		token := vm.stmt[vm.ip].Token
		if token == ";" {
			break
		}
		c, err := classify(&vm.dict, token)
		if err != nil {
			return err
		}
		body = append(body, c)
	}

	vm.logf(":", "define %v %v", name, body)
	vm.dict.Insert(NewEntry(name, Compound(body)))
	return nil
}

// semicolon only runs when ";" appears outside of any definition; inside
// one, define consumes it.
func semicolon(vm *VM) error {
	return ErrSemicolonOutsideOfWordDefinition
}
