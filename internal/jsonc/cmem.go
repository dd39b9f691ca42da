package jsonc

import (
	"strings"
	"unsafe"
)

// The structs below mirror the public layouts from json-c 0.13+ (arraylist.h
// and linkhash.h), which is what libjson-c.so.5 ships. They are only ever read
// through pointers owned by the library.

type cArrayList struct {
	array  uintptr
	length uintptr
	size   uintptr
	freeFn uintptr
}

type cLhTable struct {
	size    int32
	count   int32
	head    uintptr
	tail    uintptr
	table   uintptr
	freeFn  uintptr
	hashFn  uintptr
	equalFn uintptr
}

type cLhEntry struct {
	k           uintptr
	kIsConstant int32
	v           uintptr
	next        uintptr
	prev        uintptr
}

// arrayListElems copies the element pointers out of an array_list.
func arrayListElems(list uintptr) []Value {
	al := (*cArrayList)(unsafe.Pointer(list))
	if al.length == 0 || al.array == 0 {
		return []Value{}
	}
	raw := unsafe.Slice((*uintptr)(unsafe.Pointer(al.array)), al.length)
	elems := make([]Value, len(raw))
	for i, p := range raw {
		elems[i] = Value(p)
	}
	return elems
}

// lhTableEntries walks an lh_table from head to tail.
func lhTableEntries(table uintptr) []Entry {
	t := (*cLhTable)(unsafe.Pointer(table))
	entries := make([]Entry, 0, t.count)
	for p := t.head; p != 0; {
		e := (*cLhEntry)(unsafe.Pointer(p))
		entries = append(entries, Entry{Key: cString(e.k), Value: Value(e.v)})
		p = e.next
	}
	return entries
}

// cString copies a NUL-terminated C string into Go memory.
func cString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return cStringN(p, n)
}

// cStringN copies n bytes starting at p into Go memory.
func cStringN(p uintptr, n int) string {
	if p == 0 || n <= 0 {
		return ""
	}
	return strings.Clone(unsafe.String((*byte)(unsafe.Pointer(p)), n))
}
