package main

import "github.com/dmitrymomot/gtinkit/internal/cli"

func main() {
	cli.Execute()
}
