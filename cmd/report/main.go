package main

import (
	"fmt"
	"os"

	"liveCrime/cmd"
)

func main() {
	if err := cmd.RunReport(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
