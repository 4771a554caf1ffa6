package main

import "github.com/itsmostafa/ares/cmd"

func main() {
	cmd.Execute()
}
