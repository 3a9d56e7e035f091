package main

import (
	"os"

	"github.com/viant/designsuite/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
