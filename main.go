package main

import "github.com/wavecrossed/tubefy/cmd"

func main() {
	cmd.Execute()
}
