package main

import "github.com/notargets/gopointbc/cmd"

func main() {
	cmd.Execute()
}
