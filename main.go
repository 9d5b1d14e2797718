package main

import "anonapi/internal/cli"

func main() {
	cli.Execute()
}
