package main

import "github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/cmd"

func main() {
	cmd.Execute()
}
