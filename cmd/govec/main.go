package main

import (
	"fmt"
	"os"

	"golang.org/x/text/language"

	"govec/algos"
	"govec/order"
	"govec/vec"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v":
			vec.Debug = true
		default:
			fmt.Fprintf(os.Stderr, "usage: govec [-v]\n")
			os.Exit(2)
		}
	}

	v := vec.NewFill(10, 5)
	v2 := v.Clone()

	v3 := vec.NewFill(3, 7)
	v2.Assign(&v3)

	v4 := vec.Of(5, 4, 3, 2, 1)
	algos.Sort(&v4)
	fmt.Println("sorted:", v4.Slice())

	tmp := vec.NewFill(4, 9)
	v4.MoveFrom(&tmp)
	fmt.Println("after move: len(v4) =", v4.Len(), "len(tmp) =", tmp.Len())

	v.Swap(&v4)
	vec.Swap(&v, &v4)

	a := vec.Of(1, 2, 3)
	b := vec.Of(1, 2, 4)
	fmt.Println("compare:", vec.Compare(a, b))

	names := vec.Of("Äpfel", "Banane", "Zucker")
	algos.SortFunc(&names, order.Collation(language.German))
	fmt.Println("collated:", names.Slice())

	if vec.Debug {
		v2.Dump(os.Stdout)
		names.Dump(os.Stdout)
	}
}
