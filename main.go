package main

import "blogsmith/internal/cli"

func main() {
	cli.Execute()
}
