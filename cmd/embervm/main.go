package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/embervm/embervm/emulator"
)

func main() {
	var compile string
	var memSize int
	var budget int
	var base uint64
	var seed int64
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".evm file to compile and run")
	flag.IntVar(&memSize, "m", emulator.MEMORY_SIZE, "Memory size in bytes")
	flag.IntVar(&budget, "b", 1000000, "Cycle budget")
	flag.Uint64Var(&base, "p", uint64(emulator.PERIPHERAL_BASE), "Peripheral window base address")
	flag.Int64Var(&seed, "seed", 1, "PRNG seed")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no input file (-c)", os.Args[0])
	}

	mac := emulator.NewMachine(memSize, uint32(base))
	mac.Verbose = verbose

	if input == "-" {
		mac.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		mac.Console.Input = inf
	}

	if output == "-" {
		mac.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		mac.Console.Output = ouf
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	err = mac.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	err = mac.Reset()
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	mac.Cpu.SetSeed(seed)

	status, err := mac.Run(budget)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", status)
}
