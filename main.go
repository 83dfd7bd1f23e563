package main

import "github.com/carson-networks/budget-engine/cmd"

func main() {
	cmd.Execute()
}
