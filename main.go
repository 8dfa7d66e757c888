package main

import "github.com/andriantama/brewsim/cmd"

func main() {
	cmd.Execute()
}
