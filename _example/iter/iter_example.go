package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/lispio/sexpr"
)

func dump(it *sexpr.Iter, depth int) error {
	for it.Next() {
		a := it.Atom()
		if a.Is(sexpr.AtomList) {
			fmt.Printf("%s(\n", strings.Repeat("  ", depth))
			sub := a.List()
			if err := dump(&sub, depth+1); err != nil {
				return err
			}
			fmt.Printf("%s)\n", strings.Repeat("  ", depth))
			continue
		}
		fmt.Printf("%s%v %v\n", strings.Repeat("  ", depth), a.Kind(), a)
	}
	return it.Err()
}

func main() {
	input := `(defun sq (x) ; squares x
	(* x x))
(print (sq 12) :label "result \"n\"")`

	if err := dump(sexpr.New(input), 0); err != nil {
		log.Fatal("sexpr:", err)
	}
}
