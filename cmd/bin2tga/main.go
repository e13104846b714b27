package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/bin2tga"
	"github.com/urfave/cli/v2"
)

const (
	usageExitCode = 2
	errorExitCode = 1
)

func usageError(app *cli.App) cli.ExitCoder {
	return cli.NewExitError(fmt.Sprintf("usage: %s %s", app.Name, app.ArgsUsage), usageExitCode)
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "bin2tga"
	app.Usage = "Convert a text bitmap of 0's and 1's into a 32-bit TGA image"
	app.ArgsUsage = "INPUT OUTPUT"
	app.HideHelp = true
	app.HideVersion = true

	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return usageError(c.App)
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 2 {
			return usageError(c.App)
		}

		logger := log.New(ioutil.Discard, "", 0)

		if err := bin2tga.New(logger).ConvertFile(c.Args().Get(0), c.Args().Get(1)); err != nil {
			return cli.NewExitError(err, errorExitCode)
		}

		return nil
	}

	return app
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bin2tga: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
