package main

import "github.com/spacerover/spacerover-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
