// cmd/hexascii/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go-hexmap/internal/app"
)

func main() {
	rows := flag.Int("r", 5, "number of rows")
	cols := flag.Int("c", 5, "number of columns")
	numbers := flag.Bool("n", false, "print cell coordinates")
	units := flag.Bool("u", false, "place the demo units and mark them")
	interactive := flag.Bool("i", false, "read commands from stdin (q, U, N, U row,col)")
	flag.Parse()

	m, err := app.NewDemoMap(*rows, *cols)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}
	if *interactive {
		if err := app.RunConsole(os.Stdin, os.Stdout, m, *numbers, *units); err != nil {
			log.Fatal(err)
		}
		return
	}
	fmt.Print(m.ASCII(*numbers, *units))
}
