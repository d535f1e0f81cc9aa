package main

import (
	"fmt"
	"log"

	"github.com/lispio/sexpr/lexer"
)

func main() {
	input := `(set answer 42) ; the answer`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for _, tok := range tokens {
		fmt.Println(tok)
	}
}
