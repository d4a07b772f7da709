package main

import "github.com/rskv-p/xtrie/cmd"

func main() {
	cmd.Execute()
}
