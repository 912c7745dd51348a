package mcts

import "unsafe"

// ptrFromTree flattens the tree pointer so nodes can reach back to their
// arena without the garbage collector seeing a cycle.
func ptrFromTree(t *Tree) uintptr { return uintptr(unsafe.Pointer(t)) }

func treeFromUintptr(p uintptr) *Tree { return (*Tree)(unsafe.Pointer(p)) }
