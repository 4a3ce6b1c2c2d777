package main

import "mogger/internal/cli"

func main() {
	cli.Execute()
}
