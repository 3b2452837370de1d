package core_test

import (
	"fmt"

	"github.com/katalvlaran/strata/core"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleInterval_Union
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two overlapping intervals describe the same stretch of a well:
//	  a = [10, 20] sandstone
//	  b = [18, 30] mudstone
//	Union covers both ranges and blends the component lists.
//
// Use case:
//
//	Reconciling two logs of the same section before merging.
//
// Complexity: O(k) time in the component count.
func ExampleInterval_Union() {
	sand := core.NewComponent(core.Attr{Key: "lithology", Value: "sandstone"})
	mud := core.NewComponent(core.Attr{Key: "lithology", Value: "mudstone"})

	a := core.NewInterval(10, 20, sand)
	b := core.NewInterval(18, 30, mud)

	u, err := a.Union(b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("span=[%g, %g]\n", u.Top.Value, u.Base.Value)
	fmt.Println(u.Summary())
	// Output:
	// span=[10, 30]
	// 20.00 of sandstone with mudstone
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInterval_SplitAt
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Cut one interval at an interior depth; both pieces keep the
//	original's components.
//
// Use case:
//
//	Cropping a striplog to a window that falls inside a unit.
func ExampleInterval_SplitAt() {
	sand := core.NewComponent(core.Attr{Key: "lithology", Value: "sandstone"})
	iv := core.NewInterval(0, 10, sand)

	upper, lower, err := iv.SplitAt(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("upper=[%g, %g] lower=[%g, %g]\n",
		upper.Top.Value, upper.Base.Value, lower.Top.Value, lower.Base.Value)
	// Output:
	// upper=[0, 4] lower=[4, 10]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleComponent_Key
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two components written with different attribute order and letter
//	case still canonicalize to the same identity string.
//
// Use case:
//
//	Grouping intervals by rock type regardless of data-entry style.
func ExampleComponent_Key() {
	a := core.NewComponent(
		core.Attr{Key: "lithology", Value: "Sandstone"},
		core.Attr{Key: "colour", Value: "grey"},
	)
	b := core.NewComponent(
		core.Attr{Key: "Colour", Value: "Grey"},
		core.Attr{Key: "lithology", Value: "sandstone"},
	)

	fmt.Println(a.Key())
	fmt.Println(a.Key() == b.Key())
	// Output:
	// colour=grey; lithology=sandstone
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBetween
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A boundary picked from cuttings is only known to within a metre.
//	The position carries its uncertainty alongside the nominal value.
func ExampleBetween() {
	p, err := core.Between(12.5, 12, 13)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%g uncertainty=%g\n", p.Value, p.Uncertainty())
	// Output:
	// value=12.5 uncertainty=1
}
