// Package main provides the vecgeom CLI entry point.
package main

import (
	"log"
)

var (
	version = "0.1.0"
	commit  = "dev" // Set via ldflags: -X main.commit=$(git rev-parse --short HEAD)
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vecgeom: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
