// Command freelistctl scripts a sequence of malloc/free calls against the
// free-list allocator and prints the free list on request and once the
// script finishes. It is a demonstration binary, not a test harness.
//
// Usage:
//
//	freelistctl m<bytes> [m<bytes>|f<slot>|d]...
//
// m<bytes> allocates bytes and remembers the result under the next free
// slot number (starting at 0); f<slot> frees a previously allocated slot;
// d dumps the current free list. The free list is always dumped after the
// whole script finishes.
package main

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"github.com/teleprint-me/attica/lib/freelist"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: freelistctl m<bytes>|f<slot>|d ...")
		return
	}

	a := freelist.NewAllocator()
	if err := a.Initialize(); err != nil {
		fmt.Println("initialize:", err)
		os.Exit(1)
	}
	defer func() {
		if err := a.Terminate(); err != nil {
			fmt.Println("terminate:", err)
		}
	}()

	slots := map[int]unsafe.Pointer{}
	next := 0

	for _, arg := range os.Args[1:] {
		if arg == "" {
			continue
		}
		switch arg[0] {
		case 'm':
			n, err := strconv.ParseUint(arg[1:], 10, 64)
			if err != nil {
				fmt.Println("bad malloc argument:", arg, err)
				continue
			}
			p := a.Malloc(uintptr(n))
			if p == nil {
				fmt.Printf("malloc(%d) failed\n", n)
				continue
			}
			slots[next] = p
			fmt.Printf("slot %d = malloc(%d) -> %#x\n", next, n, uintptr(p))
			next++
		case 'f':
			slot, err := strconv.Atoi(arg[1:])
			if err != nil {
				fmt.Println("bad free argument:", arg, err)
				continue
			}
			p, ok := slots[slot]
			if !ok {
				fmt.Println("no such slot:", slot)
				continue
			}
			a.Free(p)
			delete(slots, slot)
			fmt.Printf("slot %d freed\n", slot)
		case 'd':
			dump(a)
		default:
			fmt.Println("unrecognized step:", arg)
		}
	}

	dump(a)
}

func dump(a *freelist.Allocator) {
	blocks := a.Dump()
	fmt.Printf("free list (%d nodes, %d allocs, %d bytes grown):\n", len(blocks), a.Allocs, a.GrowthBytes)
	for i, b := range blocks {
		fmt.Printf("  [%d] addr=%#x units=%d next=%#x\n", i, b.Addr, b.Units, b.Next)
	}
}
