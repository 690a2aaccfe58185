// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/pfpu/emulator"
	"github.com/ezrec/pfpu/harness"
	"github.com/ezrec/pfpu/internal"
)

func main() {
	var verbose bool
	var stepped bool
	var defines bool
	var limit int

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&stepped, "s", false, "Stepped mode, the PFPU only runs in wait()")
	flag.BoolVar(&defines, "defines", false, "List the predeclared symbols and exit")
	flag.IntVar(&limit, "l", 0, "Cycle limit of wait(), 0 for none")

	flag.Parse()

	if defines {
		emu, err := emulator.NewEmulator()
		if err != nil {
			log.Fatal(err)
		}
		for key, value := range internal.Sorted2(emu.Defines()) {
			fmt.Printf("%s = %s\n", key, value)
		}
		return
	}

	if flag.NArg() == 0 {
		log.Fatalf("%v: No test scripts given", os.Args[0])
	}

	h := &harness.Harness{
		Verbose: verbose,
		Stepped: stepped,
		Limit:   limit,
		Output:  os.Stdout,
	}

	failed := false
	for _, filename := range flag.Args() {
		src, err := os.ReadFile(filename)
		if err != nil {
			log.Fatalf("%v: %v", filename, err)
		}

		results, err := h.Run(filename, src)
		if err != nil {
			log.Fatal(err)
		}

		for _, res := range results {
			fmt.Printf("%s: %v\n", filename, res)
		}

		if harness.Failed(results) != nil {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
