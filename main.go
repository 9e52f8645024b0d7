package main

import "quest-zone/cmd"

func main() {
	cmd.Execute()
}
