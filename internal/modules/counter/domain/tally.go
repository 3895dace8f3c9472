package domain

import (
	"math"
	"strconv"
)

const KeyCount = "pushUpCount"

// Tally is the push-up count. It never goes below zero and saturates at
// math.MaxInt.
type Tally int

func NewTally(n int) Tally {
	if n < 0 {
		return 0
	}
	return Tally(n)
}

func (t Tally) Increment() Tally {
	if t == math.MaxInt {
		return t
	}
	return t + 1
}

// Add counts n push-ups at once.
func (t Tally) Add(n int) Tally {
	if n > math.MaxInt-int(t) {
		return math.MaxInt
	}
	return NewTally(int(t) + n)
}

func (Tally) Reset() Tally { return 0 }

func (t Tally) Int() int { return int(t) }

// Display is the counter text: prompt while nothing is counted yet.
func (t Tally) Display(prompt string) string {
	if t == 0 {
		return prompt
	}
	return strconv.Itoa(int(t))
}
