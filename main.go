package main

import "github.com/scaledrill/scaledrill/cmd"

func main() {
	cmd.Execute()
}
