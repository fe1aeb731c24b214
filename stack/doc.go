// Package stack provides a persistent (immutable) LIFO stack used as the
// pushdown store of every automaton in this module.
//
// What
//
//   - Stack[T] is a value type. The zero value is the empty stack; there is
//     no nil stack, only a zero-length one.
//   - Push, PushAll and Pop return new stacks and never modify the receiver.
//   - Stacks produced from a common predecessor share their tails, so a
//     transition that fans one configuration out into several successors
//     costs O(1) per successor and no successor can observe another's pops.
//
// Why
//
//	A nondeterministic pushdown automaton explores many branches at once.
//	With a mutable slice every branch would need a defensive copy; with a
//	persistent list sharing is free and aliasing bugs are impossible.
//
// Complexity
//
//   - Push, Pop, Peek, Len, IsEmpty: O(1)
//   - PushAll: O(k) for k pushed values
//   - Slice, String, Equal: O(n)
//
// Errors
//
//   - ErrUnderflow  Pop on an empty stack.
//
// Usage
//
//	s := stack.Of("EOS")
//	s = s.Push("0").Push("1")
//	rest, top, err := s.Pop() // rest = [EOS 0], top = "1"
package stack
