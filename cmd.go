package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/madihagulraiz771/Color-detection-sys/config"
	"github.com/madihagulraiz771/Color-detection-sys/internal/game"
	"github.com/madihagulraiz771/Color-detection-sys/internal/imagebuf"
	"github.com/madihagulraiz771/Color-detection-sys/internal/palette"
	"github.com/madihagulraiz771/Color-detection-sys/internal/picker"
)

var command = &cli.Command{
	Name:  "colorpick",
	Usage: "Double-click a pixel to see the nearest named color",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "image",
			Usage:   "Path to the image file",
			Aliases: []string{"i"},
			Sources: cli.EnvVars("COLORPICK_IMAGE"),
		},
		&cli.StringFlag{
			Name:    "palette",
			Usage:   "Palette CSV (color,color_name,hex,R,G,B), overrides the config file",
			Aliases: []string{"p"},
			Sources: cli.EnvVars("COLORPICK_PALETTE"),
		},
		&cli.StringFlag{
			Name:    "config",
			Usage:   "JSON config file",
			Aliases: []string{"c"},
			Value:   config.DefaultPath,
			Sources: cli.EnvVars("COLORPICK_CONFIG"),
		},
		&cli.BoolFlag{
			Name:  "show-monitor",
			Usage: "Show CPU and memory usage in the corner",
		},
		&cli.BoolFlag{
			Name:  "write-config",
			Usage: "Write the effective config to --config and exit",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Debug logging",
			Aliases: []string{"v"},
		},
	},
	Action: action,
}

func action(ctx context.Context, c *cli.Command) error {
	if c.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfgPath := c.String("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", cfgPath, err)
	}
	if c.IsSet("palette") {
		cfg.PalettePath = c.String("palette")
	}
	if c.IsSet("show-monitor") {
		cfg.ShowMonitor = c.Bool("show-monitor")
	}

	if c.Bool("write-config") {
		if err := config.Save(cfg, cfgPath); err != nil {
			return fmt.Errorf("write config %s: %w", cfgPath, err)
		}
		fmt.Printf("🟢 Saved config '%s'\n", cfgPath)
		return nil
	}

	imagePath := c.String("image")
	if imagePath == "" {
		return errors.New("missing --image, example: colorpick -i image.jpg")
	}

	session, err := picker.Open(imagePath, cfg.PalettePath)
	if err != nil {
		return describe(err, cfg.PalettePath)
	}
	return game.New(cfg, session).Run()
}

// describe turns startup failures into messages for the terminal.
func describe(err error, palettePath string) error {
	switch {
	case errors.Is(err, imagebuf.ErrNotFound):
		return fmt.Errorf("image file not found, please provide a valid path (%w)", err)
	case errors.Is(err, imagebuf.ErrDecode):
		return fmt.Errorf("image file could not be read (%w)", err)
	case errors.Is(err, palette.ErrNotFound):
		return fmt.Errorf("palette '%s' not found, pass --palette or place it in the working directory (%w)", palettePath, err)
	case errors.Is(err, palette.ErrMalformed), errors.Is(err, palette.ErrEmpty):
		return fmt.Errorf("palette '%s' is unusable (%w)", palettePath, err)
	}
	return err
}
