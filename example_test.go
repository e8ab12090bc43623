package sigslot_test

import (
	"fmt"

	"github.com/sigkit/sigslot"
)

func ExampleSignal() {
	var saved sigslot.Signal[string]

	conn := saved.Connect(func(path string) {
		fmt.Println("saved to", path)
	})

	saved.Emit("/tmp/state.json")

	conn.Disconnect()
	saved.Emit("/tmp/state.json")

	// Output:
	// saved to /tmp/state.json
}

func ExampleConnectMethod() {
	type counter struct{ total int }
	add := func(c *counter, n int) { c.total += n }

	var deposits sigslot.Signal[int]
	c := &counter{}
	sigslot.ConnectMethod(&deposits, c, add)

	deposits.Emit(3)
	deposits.Emit(4)
	fmt.Println(c.total)

	// Output:
	// 7
}
