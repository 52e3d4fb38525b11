package parsekit_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/parsekit"
	"github.com/hupe1980/parsekit/hashtable"
	"github.com/hupe1980/parsekit/inttrie"
	"github.com/hupe1980/parsekit/stack"
	"github.com/hupe1980/parsekit/topo"
)

// Example_sortVector orders the children of a node so dependencies come first.
func Example_sortVector() {
	f := parsekit.NewFactory()
	defer f.Close()

	children, err := f.NewVector()
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range []string{"expr", "term", "factor"} {
		if _, err := children.Add(name, nil); err != nil {
			log.Fatal(err)
		}
	}

	s := parsekit.NewSorter()
	s.AddEdge(0, 1) // expr depends on term
	s.AddEdge(1, 2) // term depends on factor
	if err := s.SortVector(children); err != nil {
		log.Fatal(err)
	}

	for _, child := range children.All() {
		fmt.Println(child)
	}
	// Output:
	// factor
	// term
	// expr
}

// Example_cycle shows how a cycle is reported.
func Example_cycle() {
	s := topo.New()
	s.AddEdge(0, 1)
	s.AddEdge(1, 2)
	s.AddEdge(2, 0)

	_, err := s.SortToArray()

	var cycle *topo.CycleError
	if errors.As(err, &cycle) {
		fmt.Println(cycle.Cycle, parsekit.KindOf(err))
	}
	// Output: [0 1 2] cycle
}

// Example_hashTable interns strings and enumerates them in table order.
func Example_hashTable() {
	t := hashtable.New(1)
	_ = t.Put("a", 1, nil)
	_ = t.Put("b", 2, nil)

	err := t.Put("a", 3, nil)
	fmt.Println(errors.Is(err, parsekit.ErrDuplicateKey))

	for k, v := range t.All() {
		fmt.Println(k, v)
	}
	// Output:
	// true
	// a 1
	// b 2
}

// Example_trie stores integer-keyed payloads.
func Example_trie() {
	tr := inttrie.New(inttrie.MaxDepth)
	_ = tr.AddInt(1000000007, 7)

	entries, ok := tr.Get(1000000007)
	fmt.Println(ok, entries[0].Int)

	_, ok = tr.Get(42)
	fmt.Println(ok)
	// Output:
	// true 7
	// false
}

// Example_stack shows that Pop returns the element left on top.
func Example_stack() {
	s := stack.New(0)
	_ = s.Push("a", nil)
	_ = s.Push("b", nil)

	fmt.Println(s.Pop())
	// Output: a
}
