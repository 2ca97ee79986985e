package main

import (
	"github.com/zbiljic/kommit/cmd"
)

func main() {
	cmd.Execute()
}
