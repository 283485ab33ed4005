package main

import "github.com/fairai-labs/fairctl/internal/cli"

func main() {
	cli.Execute()
}
