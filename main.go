package main

import "github.com/markmals/workbench-docs/cmd"

func main() {
	cmd.Execute()
}
