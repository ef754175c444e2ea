package utils

import (
	"fmt"
	"math/rand/v2"
)

const orderNumberLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber returns a reference like "KX48213": two random letters
// followed by a five digit number.
func NewOrderNumber() string {
	a := orderNumberLetters[rand.IntN(len(orderNumberLetters))]
	b := orderNumberLetters[rand.IntN(len(orderNumberLetters))]
	return fmt.Sprintf("%c%c%d", a, b, 10000+rand.IntN(90000))
}
