package main

import "gene_scout_go/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
