package main

import "github.com/bwarfield-amplify/rcubic/cmd"

func main() {
	cmd.Execute()
}
