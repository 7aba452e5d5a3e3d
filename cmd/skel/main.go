package main

import (
	"github.com/tacogips/skel/internal/cli"
)

func main() {
	cli.Execute()
}
