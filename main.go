package main

import "github.com/soulgarden/vaultd/cmd"

func main() {
	cmd.Execute()
}
