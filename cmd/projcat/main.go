package main

import "github.com/eleven-am/projcat/cmd"

func main() {
	cmd.Execute()
}
