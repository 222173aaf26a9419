// Command complexcalc evaluates complex-number operations from the command
// line or from a YAML script.
//
//	complexcalc eval sqrt -4 0
//	complexcalc eval pow 1 1 2
//	complexcalc eval div 1 0 0 0
//	complexcalc run steps.yaml --workers 4
//	complexcalc ops
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
