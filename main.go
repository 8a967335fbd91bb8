package main

import "berichtctl/cmd"

func main() {
	cmd.Execute()
}
