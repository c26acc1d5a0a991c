package main

import "github.com/kozaktomas/skin-advisor/cmd"

func main() {
	cmd.Execute()
}
