package main

import (
	"log"
	"os"

	"ctordtor/examples"
)

func main() {
	if err := examples.Run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
