package main

import "github.com/philipparndt/orbitview/cmd"

func main() {
	cmd.Execute()
}
