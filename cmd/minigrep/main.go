package main

import "github.com/betterleaks/minigrep/cmd"

func main() {
	cmd.Execute()
}
