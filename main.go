package main

import "github.com/Kaushik523/Multi-cloud-cost/cmd"

func main() {
	cmd.Execute()
}
