package main

import "github.com/Arctize/dnfy/cmd"

func main() {
	cmd.Execute()
}
