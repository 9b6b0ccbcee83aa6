package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/graphio"
)

func ExampleDecode() {
	src := "3\n0 1 2\n1 2 0.5\n"
	g, err := graphio.Decode(strings.NewReader(src), graphio.FormatEdgeList)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Edges())
	// Output: [0→1(2) 1→2(0.5)]
}

func ExampleEncode() {
	g := core.MustGraph(2)
	_ = g.AddEdge(0, 1, 7)
	_ = graphio.Encode(os.Stdout, g, graphio.FormatYAML)
	// Output:
	// nodes: 2
	// edges:
	//   - from: 0
	//     to: 1
	//     weight: 7
}
