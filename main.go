package main

import "github.com/KianKhadempour/potassium/cmd"

func main() {
	cmd.Execute()
}
