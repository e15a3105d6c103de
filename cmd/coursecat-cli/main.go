package main

import "coursecat/cmd/coursecat-cli/cmd"

func main() {
	cmd.Execute()
}
