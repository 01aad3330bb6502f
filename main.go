package main

import "github.com/flowpaths/flowpaths/cmd"

func main() {
	cmd.Execute()
}
