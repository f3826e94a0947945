package main

import "github.com/jsphweid/chordgrid/cmd"

func main() {
	cmd.Execute()
}
