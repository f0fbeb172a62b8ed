// Package main classifies recorded event payloads from the command line.
package main

import (
	"log"

	classifycmd "github.com/louisbranch/lambdatrace/internal/cmd/classify"
)

func main() {
	log.SetFlags(0)
	if err := classifycmd.NewCommand().Execute(); err != nil {
		log.Fatalf("classify: %v", err)
	}
}
