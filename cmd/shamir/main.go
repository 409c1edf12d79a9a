package main

import (
	"os"

	"github.com/viant/shamir/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
