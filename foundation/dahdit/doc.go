// File: doc.go
// Title: DahDit Package Documentation
// Description: Entry points for running DahDit programs.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-07
//
// Change History:
// - 2026-09-30 v0.1.0: Initial package documentation

/*
Package dahdit runs programs written in the DahDit language, a tiny statement
language whose source text is Morse code.

A program is a sequence of statements, each closed by ';':

	PRINT <expression>;
	PRINT <word> <word> ...;
	PRINT "literal";
	VAR <name> = <expression>;

Letters and digits are written as Morse runs separated by blanks, words are
separated by '/', and the operators + - * / % and = have reserved Morse codes.
For example

	...- .- .-. / .- = ..--- .-.-. ...-- ;
	.--. .-. .. -. - / .- ;

sets A to 5 and prints it.

The pipeline is lexer, parser and executor (see the parser and executor
packages). An Interpreter runs whole sources and returns a Result; a Session
keeps its symbol table across several sources, which is what the interactive
shell uses:

	interp, err := dahdit.New(dahdit.Options{Output: os.Stdout})
	if err != nil {
		return err
	}
	result, err := interp.RunFile("hello.dit")
	if err != nil {
		return err // the source could not be opened
	}
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d)
	}

Only an unopenable source is an error. Every other problem becomes a
diagnostic, the affected statement is skipped and the run continues.
*/
package dahdit
