package main

import "github.com/DaanHessen/santa-exe/cmd/santaexe/root"

func main() {
	root.Execute()
}
