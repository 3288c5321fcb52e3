package main

import "github.com/dmitrymomot/authvault/internal/cli"

func main() {
	cli.Execute()
}
