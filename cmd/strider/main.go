// Command strider prints the detected CPU vector capabilities and, given
// file arguments, counts line-terminator events per file.
//
//	strider -cpu
//	strider file1.txt file2.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/striderio/strider/cpufeat"
	"github.com/striderio/strider/scan"
)

func main() {
	cpu := flag.Bool("cpu", false, "print detected CPU vector extensions")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-cpu] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cpu || flag.NArg() == 0 {
		fmt.Print(cpufeat.Get())
		if flag.NArg() == 0 {
			return
		}
		fmt.Println()
	}

	status := 0
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "strider: %v\n", err)
			status = 1
			continue
		}
		fmt.Printf("%8d %s\n", scan.CountNewlines(data), path)
	}
	os.Exit(status)
}
