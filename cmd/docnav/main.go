package main

import "docnav/cmd/docnav/cmd"

func main() {
	cmd.Execute()
}
