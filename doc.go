/*
Package main: cellforth -- a small threaded Forth

Each line of input is compiled into a statement: a flat sequence of cells,
where every cell is either a literal number, or a reference to a word in the
dictionary. The statement is then run under an instruction pointer, which
steps over it one cell at a time: numbers are pushed onto the parameter
stack, words are run.

There are two kinds of words. Native words are implemented in Go, and may do
anything to the VM: most just work on the parameter stack, but some, like
branch and ":", move the instruction pointer. Compound words are themselves
statements, run to completion as a nested statement whenever called; the
caller's position is kept on the return stack meanwhile.

Cells refer to dictionary entries directly, not by name. Redefining a word
makes a new entry, so any word compiled against the old definition keeps
using it:

	: double 2 * ;
	: quad double double ;
	: double 3 * ;
	1 quad .            ( prints 4 )

Control flow is done with relative jumps within a statement; there is no
nesting of blocks. branch jumps by the number in the following cell, and
?branch does the same only when it pops TRUE (-1); otherwise it skips over
its offset. A jump lands on its target cell, and execution continues with the
cell after it:

	5 dup 0> ?branch 2 drop 0 .   ( prints 5 )

Definitions are compiled by ":" scanning ahead within the very statement that
is running, so words may be defined and used in the middle of a line.

Comments run from a "(" token to the first token ending with ")", or from a
"\" token to the end of the line.
*/
package main
