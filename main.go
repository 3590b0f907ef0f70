package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/log"
	"github.com/lumen-render/lumen/pkg/renderer"
	"github.com/lumen-render/lumen/pkg/scene"
)

var logger = log.New("lumen")

// sceneBuilders maps the scene names accepted by --scene to constructors
var sceneBuilders = map[string]func(width, height int) *scene.Scene{
	"default": scene.NewDefaultScene,
	"cornell": scene.NewCornellScene,
}

func main() {
	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using monte carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a png image",
			Description: `
Render one of the built-in scenes with the path tracing integrator and
write the result as a gamma-corrected png image.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 450,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 64,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 10,
					Usage: "maximum path length in bounces",
				},
				cli.IntFlag{
					Name:  "rr-bounces",
					Value: 3,
					Usage: "bounces before russian roulette termination starts",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "tile edge length in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "worker count (0 = number of CPUs)",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "render seed; the same seed reproduces the same image",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 1,
					Usage: "progressive passes to split the sample budget over",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	switch {
	case c.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case c.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
	return nil
}

// createScene builds a named scene at the requested resolution
func createScene(name string, width, height int) (*scene.Scene, error) {
	builder, exists := sceneBuilders[name]
	if !exists {
		return nil, fmt.Errorf("unknown scene %q; run the scenes command for the available names", name)
	}
	return builder(width, height), nil
}

func renderScene(c *cli.Context) error {
	sc, err := createScene(c.String("scene"), c.Int("width"), c.Int("height"))
	if err != nil {
		return err
	}
	sc.SamplingConfig.SamplesPerPixel = c.Int("spp")
	sc.SamplingConfig.MaxDepth = c.Int("max-depth")
	sc.SamplingConfig.RussianRouletteMinBounces = c.Int("rr-bounces")
	sc.SamplingConfig.Seed = c.Uint64("seed")

	if err := sc.Preprocess(); err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.TileSize = c.Int("tile-size")
	config.NumWorkers = c.Int("workers")
	config.Passes = c.Int("passes")

	ctx, cancel := signalContext()
	defer cancel()

	r := renderer.NewRenderer(sc, integrator.NewPathTracer(sc.SamplingConfig), config)
	img, stats, err := r.Render(ctx)
	if err != nil {
		logger.Warningf("render interrupted: %v", err)
	}

	outFile := c.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return err
	}

	logger.Noticef("wrote %s", outFile)
	stats.WriteSummary(os.Stdout)
	return nil
}

func listScenes(c *cli.Context) error {
	names := make([]string, 0, len(sceneBuilders))
	for name := range sceneBuilders {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("built-in scenes:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

// signalContext returns a context cancelled by SIGINT or SIGTERM, letting
// an interrupted render still write out the partial image
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
