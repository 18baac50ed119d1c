package main

import "github.com/mcoot/charroster/internal/cli"

func main() {
	cli.Execute()
}
