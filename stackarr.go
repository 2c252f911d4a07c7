// Package stackarr builds a fixed-size array of pointers on the stack, hands it
// to a writer that stores through each pointer, and sums the results.
//
// The storage cells are owned by the caller ([Cells]) rather than being
// package-level state, so independent runs never observe each other.
package stackarr

// Constants written by [Coerce], in pointer-array order.
const (
	First  int32 = 69
	Second int32 = 420
)

// Expected is the sum a correct run produces.
const Expected = First + Second

// Cells holds the two storage cells written through the pointer array.
//
// The zero value is the unwritten state.
type Cells struct {
	Val1 int32
	Val2 int32
}

// Sum returns Val1 + Val2 with int32 wraparound.
func (c Cells) Sum() int32 {
	return c.Val1 + c.Val2
}

// Pointers returns the pointer array for c: index 0 refers to Val1 and index 1
// to Val2.
func (c *Cells) Pointers() *[2]*int32 {
	return &[2]*int32{&c.Val1, &c.Val2}
}

// Coerce writes First through in[0] and Second through in[1].
//
// The array type fixes the length at two; both slots must be non-nil.
func Coerce(in *[2]*int32) {
	*in[0] = First
	*in[1] = Second
}

// Run stores the constants into cells through a freshly built pointer array
// and returns the sum of the written cells.
func Run(cells *Cells) int32 {
	var ptrs [2]*int32
	ptrs[0] = &cells.Val1
	ptrs[1] = &cells.Val2
	Coerce(&ptrs)
	return cells.Val1 + cells.Val2
}

// Function runs on newly allocated cells, returning the cells along with the
// sum.
func Function() (Cells, int32) {
	var cells Cells
	sum := Run(&cells)
	return cells, sum
}
