package main

import "guidepost/internal/cli"

func main() {
	cli.Execute()
}
