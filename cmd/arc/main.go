package main

import "arcadia/cmd/arc/root"

func main() {
	root.Execute()
}
