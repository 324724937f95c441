package main

import "github.com/emiliopalmerini/ufcompare/internal/cli"

func main() {
	cli.Execute()
}
