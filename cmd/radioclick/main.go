package main

import "github.com/theaetet/radioclick/internal/cli"

func main() {
	cli.Execute()
}
