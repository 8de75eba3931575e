// wireframe is a CLI for inspecting and rendering wireframe scenes offline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "validate", "check":
		err = cmdValidate(args)
	case "segments", "seg":
		err = cmdSegments(args, os.Stdout)
	case "render":
		err = cmdRender(args)
	case "animate", "anim":
		err = cmdAnimate(args)
	case "config":
		err = cmdConfig(args, os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wireframe - software 3D wireframe renderer

Usage:
  wireframe <command> [options] [scene]

Commands:
  info <scene>        Show view and model information
  validate <scene>    Check a scene file and exit non-zero if invalid
  segments <scene>    Print the projected 2D segments as YAML
  render <scene>      Render a single image
  animate <scene>     Render an animation frame sequence
  config              Print the merged config, or write it with -o / -save

Common options:
  -config <file>      Config file (default ./wireframe.yaml)
  -width, -height     Canvas size
  -animate            Apply model animation (segments, render)
  -debug              Enable debug logging

Examples:
  wireframe info scenes/cube.yaml
  wireframe segments -t 250ms scenes/spin.yaml
  wireframe render -o cube.png -bounds scenes/cube.yaml
  wireframe animate -o frames -fps 24 -duration 3s scenes/spin.yaml
  wireframe config -width 1280 -height 720 -o wireframe.yaml`)
}
