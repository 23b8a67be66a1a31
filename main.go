package main

import "frameworkicons/cmd"

func main() {
	cmd.Execute()
}
