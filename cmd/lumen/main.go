package main

import "github.com/aalvaropc/lumen/internal/cli"

func main() {
	cli.Execute()
}
