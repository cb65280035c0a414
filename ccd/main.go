// Package main is the entry point of the ccd command line tool.
package main

import "github.com/sarchlab/ccd/ccd/cmd"

func main() {
	cmd.Execute()
}
