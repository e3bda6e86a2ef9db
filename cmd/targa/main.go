package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/targa"
	"github.com/urfave/cli/v2"
)

const defaultDB = "targa.db"

var conversionFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "colors",
		Usage: "reduce to `N` colors before encoding",
	},
	&cli.UintFlag{
		Name:  "width",
		Usage: "resize to `WIDTH` pixels wide",
	},
	&cli.UintFlag{
		Name:  "height",
		Usage: "resize to `HEIGHT` pixels high",
	},
	&cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "overwrite existing files",
	},
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func options(c *cli.Context) targa.Options {
	return targa.Options{
		Colors: c.Int("colors"),
		Width:  c.Uint("width"),
		Height: c.Uint("height"),
		Force:  c.Bool("force"),
	}
}

func open(c *cli.Context) (*targa.Targa, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return targa.New(c.String("db"), logger)
}

func main() {
	app := cli.NewApp()

	app.Name = "targa"
	app.Usage = "Truevision TGA conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TARGA_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image to TGA",
			Description: "Writes SOURCE as a 32-bit uncompressed TGA file. DESTINATION defaults to SOURCE with a .tga extension.",
			ArgsUsage:   "SOURCE [DESTINATION]",
			Flags:       conversionFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				src := c.Args().First()
				dst := targa.OutputName(src)
				if c.NArg() > 1 {
					dst = c.Args().Get(1)
				}

				t, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer t.Close()

				if err := t.ConvertFile(src, dst, options(c)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and convert every image",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags:       conversionFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer t.Close()

				if err := t.Scan(c.Args().First(), options(c)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
