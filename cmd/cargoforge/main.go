package main

import "github.com/piwi3910/cargoforge/cmd/cargoforge/commands"

func main() {
	commands.Execute()
}
