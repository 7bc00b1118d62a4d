package main

import (
	"github.com/katalvlaran/quadra/internal/cli"
)

func main() {
	cli.Execute()
}
