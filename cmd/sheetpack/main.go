package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/packbird/sheetpack"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

func main() {
	app := cli.NewApp()

	app.Name = "sheetpack"
	app.Usage = "sprite sheet atlas builder"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "build",
			Usage:     "Build the three-tier atlas bundle for a sprite sheet",
			ArgsUsage: "NAME [FILE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "namespace",
					Aliases:  []string{"n"},
					Usage:    "mod id prefixed onto every frame key",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Value:   cwd,
					Usage:   "working directory for output files",
				},
				&cli.StringFlag{
					Name:  "src",
					Usage: "directory to collect *.png sprites from, in addition to FILE arguments",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "build", 1)
				}

				files := append([]string{}, c.Args().Tail()...)
				if dir := c.String("src"); dir != "" {
					matches, err := filepath.Glob(filepath.Join(dir, "*.png"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					sort.Strings(matches)
					files = append(files, matches...)
				}

				b := sheetpack.New(nil, c.String("namespace"), newLogger(c.Bool("verbose")))

				sheet := &sheetpack.SpriteSheet{
					Name:  c.Args().First(),
					Files: files,
				}

				bundles, err := b.Bundles(sheet, c.String("dir"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, bundle := range []sheetpack.SheetBundle{bundles.Reduced, bundles.Half, bundles.Full} {
					fmt.Println(bundle.Image)
					fmt.Println(bundle.Manifest)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
