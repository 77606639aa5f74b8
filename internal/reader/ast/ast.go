// Released under an MIT license. See LICENSE.

// Package ast provides the parsed form of fl commands.
//
// Every node prints back as fully parenthesized source text, so a
// printed command parses to the same tree.
package ast

import (
	"strconv"
	"strings"

	"github.com/ergrt/float/internal/type/loc"
)

// Node is a parsed command or expression.
type Node interface {
	Source() *loc.T
	String() string
}

type at struct {
	source *loc.T
}

// Source returns the location where the node starts.
func (a at) Source() *loc.T {
	return a.source
}

// Assign binds Name to the value of Value.
type Assign struct {
	at
	Name  string
	Value Node
}

// Binary is Left Op Right.
type Binary struct {
	at
	Op    string
	Left  Node
	Right Node
}

// Call applies Func to Args.
type Call struct {
	at
	Func Node
	Args []Node
}

// Error is a command that failed to parse.
type Error struct {
	at
	Err error
}

// Method calls Name on Receiver.
type Method struct {
	at
	Receiver Node
	Name     string
	Args     []Node
}

// Name is a reference to a variable or builtin.
type Name struct {
	at
	Value string
}

// Number is a numeric literal.
type Number struct {
	at
	Text string
}

// String is a string literal.
type String struct {
	at
	Value string
}

// Unary is Op Operand.
type Unary struct {
	at
	Op      string
	Operand Node
}

// NewAssign creates an assignment node.
func NewAssign(source *loc.T, name string, value Node) *Assign {
	return &Assign{at{source}, name, value}
}

// NewBinary creates a binary operator node.
func NewBinary(source *loc.T, op string, left, right Node) *Binary {
	return &Binary{at{source}, op, left, right}
}

// NewCall creates a call node.
func NewCall(source *loc.T, fn Node, args []Node) *Call {
	return &Call{at{source}, fn, args}
}

// NewError creates a node for a command that failed to parse.
func NewError(source *loc.T, err error) *Error {
	return &Error{at{source}, err}
}

// NewMethod creates a method call node.
func NewMethod(source *loc.T, receiver Node, name string, args []Node) *Method {
	return &Method{at{source}, receiver, name, args}
}

// NewName creates a name node.
func NewName(source *loc.T, value string) *Name {
	return &Name{at{source}, value}
}

// NewNumber creates a numeric literal node.
func NewNumber(source *loc.T, text string) *Number {
	return &Number{at{source}, text}
}

// NewString creates a string literal node.
func NewString(source *loc.T, value string) *String {
	return &String{at{source}, value}
}

// NewUnary creates a unary operator node.
func NewUnary(source *loc.T, op string, operand Node) *Unary {
	return &Unary{at{source}, op, operand}
}

func (n *Assign) String() string {
	return n.Name + " = " + n.Value.String()
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op + " " + n.Right.String() + ")"
}

func (n *Call) String() string {
	return n.Func.String() + "(" + join(n.Args) + ")"
}

func (n *Error) String() string {
	return "<error: " + n.Err.Error() + ">"
}

func (n *Method) String() string {
	return n.Receiver.String() + "." + n.Name + "(" + join(n.Args) + ")"
}

func (n *Name) String() string {
	return n.Value
}

func (n *Number) String() string {
	return n.Text
}

func (n *String) String() string {
	return strconv.Quote(n.Value)
}

func (n *Unary) String() string {
	return "(" + n.Op + n.Operand.String() + ")"
}

func join(ns []Node) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = n.String()
	}

	return strings.Join(s, ", ")
}
