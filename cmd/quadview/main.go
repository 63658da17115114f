package main

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"quadview/internal/annotate"
	"quadview/internal/capture"

	cli "github.com/urfave/cli/v3"
	"gocv.io/x/gocv"
)

func main() {
	app := &cli.Command{
		Name:  "quadview",
		Usage: "Annotate quad-view videos and capture frames or channels as stills",
		Commands: []*cli.Command{
			annotateCommand(),
			frameCommand(),
			channelCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func annotateCommand() *cli.Command {
	return &cli.Command{
		Name:  "annotate",
		Usage: "Burn a frame counter into every frame of a video",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input video file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output video file",
				Required: true,
			},
			&cli.Float64Flag{
				Name:  "font-scale",
				Usage: "Counter font scale",
				Value: 2,
			},
			&cli.IntFlag{
				Name:  "thickness",
				Usage: "Counter stroke thickness",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Counter color as B,G,R",
				Value: "0,255,0",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := annotate.DefaultOptions()
			opts.FontScale = cmd.Float64("font-scale")
			if opts.FontScale <= 0 {
				return cli.Exit("font-scale must be greater than zero", 2)
			}
			opts.Thickness = cmd.Int("thickness")
			if opts.Thickness <= 0 {
				return cli.Exit("thickness must be greater than zero", 2)
			}
			col, err := parseColor(cmd.String("color"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			opts.Color = col

			_, err = annotate.Video(cmd.String("input"), cmd.String("output"), opts)
			return err
		},
	}
}

func frameCommand() *cli.Command {
	return &cli.Command{
		Name:  "frame",
		Usage: "Save one or more frames as JPEG stills",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input video file",
				Required: true,
			},
			&cli.IntSliceFlag{
				Name:     "frames",
				Aliases:  []string{"n"},
				Usage:    "Frame indices to capture (comma separated)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (single frame only)",
			},
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"d"},
				Usage:   "Output directory for multiple frames",
				Value:   "frames",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Preview the captured frame in a window",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := cmd.String("input")
			indices := cmd.IntSlice("frames")
			if len(indices) == 0 {
				return cli.Exit("at least one frame index is required", 2)
			}

			if len(indices) == 1 {
				outPath := cmd.String("output")
				if outPath == "" {
					outPath = capture.FrameName(indices[0])
				}
				if err := capture.Frame(input, indices[0], outPath); err != nil {
					return err
				}
				log.Printf("saved frame %d -> %s", indices[0], outPath)
				if cmd.Bool("show") {
					return preview(fmt.Sprintf("Frame %d", indices[0]), outPath)
				}
				return nil
			}

			if cmd.String("output") != "" {
				return cli.Exit("use --out-dir when capturing multiple frames", 2)
			}
			written, err := capture.Frames(input, indices, cmd.String("out-dir"))
			if err != nil {
				return err
			}
			log.Printf("done: %d of %d frames written", written, len(indices))
			return nil
		},
	}
}

func channelCommand() *cli.Command {
	return &cli.Command{
		Name:  "channel",
		Usage: "Save one quad-view channel of a frame as a JPEG still",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input video file",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "frame",
				Aliases:  []string{"n"},
				Usage:    "Frame index to capture",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "channel",
				Aliases:  []string{"c"},
				Usage:    "Channel number (1-4)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output image file",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Resize composite to this width before splitting",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Resize composite to this height before splitting",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Preview the captured channel in a window",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outPath, err := capture.Channel(cmd.String("input"), capture.ChannelRequest{
				Frame:   cmd.Int("frame"),
				Channel: cmd.Int("channel"),
				Width:   cmd.Int("width"),
				Height:  cmd.Int("height"),
				OutPath: cmd.String("output"),
			})
			if err != nil {
				return err
			}
			if cmd.Bool("show") {
				title := fmt.Sprintf("Frame %d - Channel %d", cmd.Int("frame"), cmd.Int("channel"))
				return preview(title, outPath)
			}
			return nil
		},
	}
}

// preview shows a saved still until a key is pressed.
func preview(title, path string) error {
	img := gocv.IMRead(path, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return fmt.Errorf("read image %s", path)
	}

	win := gocv.NewWindow(title)
	defer win.Close()
	win.IMShow(img)
	win.WaitKey(0)
	return nil
}

// parseColor reads a "B,G,R" triple, matching OpenCV's channel order.
func parseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("color must be B,G,R, got %q", s)
	}
	var bgr [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("color component %q must be 0-255", p)
		}
		bgr[i] = uint8(v)
	}
	return color.RGBA{B: bgr[0], G: bgr[1], R: bgr[2]}, nil
}
