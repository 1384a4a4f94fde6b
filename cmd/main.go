package main

import (
	cmd "github.com/rbarros/recipefinder/cmd/recipefinder"
)

func main() {
	cmd.Execute()
}
