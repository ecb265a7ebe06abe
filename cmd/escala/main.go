package main

import "github.com/RyanBlaney/sonido-escala/cmd"

func main() {
	cmd.Execute()
}
