// Package calc implements the four-function calculator behind the calculator tab.
//
// An Accumulator holds at most one committed operand, one pending operator and
// the digits currently being typed. Operators chain left to right with no
// precedence, so "2 + 3 × 4 =" is 20. Division by zero never surfaces as an
// error value: the machine resets itself and shows a fixed marker until the
// next digit or clear.
package calc
