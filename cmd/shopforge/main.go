package main

import "github.com/marshallshelly/shopforge/cmd/shopforge/commands"

func main() {
	commands.Execute()
}
