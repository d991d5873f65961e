package main

import "github.com/vcrobe/lisplet/cmd/lispletc/internal/command"

func main() {
	command.Execute()
}
