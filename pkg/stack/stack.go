package stack

import (
	"errors"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

var ErrEmptyStack = errors.New("empty stack")

// stack keeps its top at the head of a doubly-linked list so that push, pop
// and peek never walk the list.
type stack[T any] struct {
	list *doublylinkedlist.List
}

type Stack[T any] interface {
	Push(v T)
	Pop() T
	Peek() T
	Size() int
	Empty() bool
}

func New[T any]() Stack[T] {
	return &stack[T]{doublylinkedlist.New()}
}

func (s *stack[T]) Push(value T) {
	s.list.Prepend(value)
}

func (s *stack[T]) Pop() T {
	value := s.Peek()
	s.list.Remove(0)
	return value
}

func (s *stack[T]) Peek() T {
	value, ok := s.list.Get(0)
	if !ok {
		panic(ErrEmptyStack)
	}

	return value.(T)
}

func (s *stack[T]) Size() int {
	return s.list.Size()
}

func (s *stack[T]) Empty() bool {
	return s.list.Empty()
}
