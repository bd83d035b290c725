package main

import (
	"os"

	"github.com/lonng/riichihand/internal/command"
)

func main() {
	app := command.NewApp(os.Stdout)
	app.Run(os.Args)
}
