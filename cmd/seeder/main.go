package main

import "github.com/juliogsp/restaurante-seeder/internal/cmd"

func main() {
	cmd.Execute()
}
