package main

import "compilerpaths/cmd"

func main() {
	cmd.Execute()
}
