package main

import "github.com/medvault/medvault-cli/cmd"

func main() {
	cmd.Execute()
}
