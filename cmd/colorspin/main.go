package main

import "github.com/ironsheep/color-spin-mcp/internal/cli"

func main() {
	cli.Execute()
}
