package main

import (
	"os"

	"github.com/iizs/godooray/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
