package chain_test

import (
	"fmt"

	"github.com/katalvlaran/organo/chain"
)

// ExampleBuilder builds 3-methylhexane and walks it in pre-order.
func ExampleBuilder() {
	b := chain.NewBuilder()
	if err := b.Chain(6); err != nil {
		panic(err)
	}
	if err := b.ChainAt(3, 1); err != nil {
		panic(err)
	}
	fmt.Println(b.ChainLen(), b.Size())

	tree, err := b.Build()
	if err != nil {
		panic(err)
	}
	fmt.Println(tree)
	fmt.Println(len(chain.Flatten(tree)))
	// Output:
	// 6 7
	// [#0 #1 #2 [#6] #3 #4 #5]
	// 7
}

// ExampleBuilder_ChainAt shows locant validation against the parent chain.
func ExampleBuilder_ChainAt() {
	b := chain.NewBuilder()
	fmt.Println(b.ChainAt(1, 1))

	_ = b.Chain(4)
	fmt.Println(b.ChainAt(5, 1))
	fmt.Println(b.ChainAt(4, 1), b.Size())
	// Output:
	// ChainAt(1,1): chain: parent chain not configured
	// ChainAt(5,1): locant outside [1,4]: chain: invalid locant
	// <nil> 5
}
