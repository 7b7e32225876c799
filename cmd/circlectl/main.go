package main

import "github.com/kalegame/circleoftrust/internal/cli"

func main() {
	cli.Execute()
}
