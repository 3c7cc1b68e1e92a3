// Package linkedlist provides a generic singly linked list.
//
// A List owns a forward-only chain of nodes. Values are added and removed at
// either end; the front operations are O(1) and the back operations walk the
// chain because there is no tail pointer. Absence (popping or peeking an empty
// list) is reported through a bool result rather than an error.
//
// Traversal comes in three forms:
//   - Iter and All yield copies of the values and leave the list untouched.
//   - IterMut and AllMut yield pointers so values can be changed in place.
//   - IntoIter and Drain take the nodes out of the list and pop them one by one.
//
// The borrowing iterators panic if the chain is changed (a push, a pop or a
// Clear) while they are in use.
//
// List is not safe for concurrent use.
package linkedlist
