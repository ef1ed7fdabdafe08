package array

import (
	"fmt"
)

// MinCapacity is the initial capacity and the floor below which the
// backing storage never shrinks.
const MinCapacity = 2

type array[T any] struct {
	storage []T
	length  int
}

type Array[T any] interface {
	Get(index int) T
	Last() T
	Set(index int, val T)
	Push(val T) int
	Pop() T
	Shift() T
	Remove(index int) T
	Len() int
	Cap() int
	Values() []T
}

func New[T any]() Array[T] {
	return &array[T]{
		storage: make([]T, MinCapacity),
		length:  0,
	}
}

func (a *array[T]) Get(index int) T {
	a.checkBounds(index)
	return a.storage[index]
}

func (a *array[T]) Last() T {
	return a.Get(a.length - 1)
}

func (a *array[T]) Set(index int, val T) {
	a.checkBounds(index)
	a.storage[index] = val
}

// Push appends val, doubling the storage when it is full, and returns the
// index val was stored at.
func (a *array[T]) Push(val T) int {
	if a.length == a.Cap() {
		a.resize(a.Cap() * 2)
	}

	a.storage[a.length] = val
	a.length++
	return a.length - 1
}

func (a *array[T]) Pop() T {
	return a.Remove(a.length - 1)
}

// Shift removes the first element. Together with Push it makes the array a
// FIFO queue.
func (a *array[T]) Shift() T {
	return a.Remove(0)
}

// Remove deletes the element at index, shifting the tail left by one. The
// storage is halved once fewer than a third of its slots are in use, but
// never below MinCapacity.
func (a *array[T]) Remove(index int) T {
	a.checkBounds(index)

	old := a.storage[index]
	copy(a.storage[index:a.length], a.storage[index+1:a.length])

	var zero T
	a.length--
	a.storage[a.length] = zero

	if 3*a.length < a.Cap() && a.Cap()/2 >= MinCapacity {
		a.resize(a.Cap() / 2)
	}
	return old
}

func (a *array[T]) Len() int {
	return a.length
}

func (a *array[T]) Cap() int {
	return len(a.storage)
}

func (a *array[T]) Values() []T {
	values := make([]T, a.length)
	copy(values, a.storage[:a.length])
	return values
}

func (a *array[T]) resize(size int) {
	storage := make([]T, size)
	copy(storage, a.storage[:a.length])
	a.storage = storage
}

func (a *array[T]) checkBounds(index int) {
	if index < 0 || index >= a.length {
		panic(fmt.Errorf("out of bounds: %d, len:%d", index, a.length))
	}
}
