package main

import "surf-atlas/cmd"

func main() {
	cmd.Execute()
}
