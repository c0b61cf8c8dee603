package main

import "flyaway/internal/cli"

func main() {
	cli.Execute()
}
