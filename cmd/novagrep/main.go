package main

import "github.com/LowByteFox/novagrep/internal/cli"

func main() {
	cli.Execute()
}
