package main

import "github.com/apfsource/ktroid/internal/cli"

func main() {
	cli.Execute()
}
