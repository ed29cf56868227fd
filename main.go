package main

import "github.com/kashguard/go-cosmos/cmd"

func main() {
	cmd.Execute()
}
