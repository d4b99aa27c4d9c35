package main

import "github.com/ArnaudCalmettes/binbench/cmd"

func main() {
	cmd.Execute()
}
