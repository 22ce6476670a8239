package instance_test

import (
	"fmt"

	"github.com/katalvlaran/cvrp/instance"
)

// ExampleNew builds a three-node instance by hand and queries it.
func ExampleNew() {
	inst, err := instance.New(10, []instance.Node{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 3, Y: 4, Demand: 6},
		{ID: 3, X: -6, Y: 8, Demand: 7},
	}, instance.WithName("tiny"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(inst.Name(), inst.Size())
	fmt.Printf("d(0,1)=%.1f d(0,2)=%.1f\n", inst.Dist(0, 1), inst.Dist(0, 2))
	fmt.Println("vehicles at least", inst.MinVehicles())
	// Output:
	// tiny 3
	// d(0,1)=5.0 d(0,2)=10.0
	// vehicles at least 2
}
