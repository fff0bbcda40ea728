package main

import "github.com/cura-cli/cura/cmd"

func main() {
	cmd.Execute()
}
