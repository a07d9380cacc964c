// Command svgops compiles SVG path strings, or whole SVG files, into
// their canonical operation sequence, and optionally rasterizes them
// to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgicon"
	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgpath"
	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgraster"
)

func main() {
	d := flag.String("d", "", "path mini-language string to compile")
	in := flag.String("in", "", "input SVG file")
	out := flag.String("png", "", "render to this PNG file instead of printing operations")
	width := flag.Int("width", 256, "image width when rendering a bare path string")
	height := flag.Int("height", 256, "image height when rendering a bare path string")
	flag.Parse()

	switch {
	case *d != "" && *in != "":
		log.Fatal("use either -d or -in, not both")
	case *d != "":
		runPath(*d, *out, *width, *height)
	case *in != "":
		runFile(*in, *out)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runPath(d, out string, width, height int) {
	if out == "" {
		p, err := svgpath.ParsePath(d)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(p.ToSVGPath())
		return
	}
	img, err := svgraster.RasterPathToImage(d, width, height)
	if err != nil {
		log.Fatal(err)
	}
	writePNG(out, img)
}

func runFile(in, out string) {
	if out == "" {
		icon, err := svgicon.ReadIcon(in, svgicon.WarnErrorMode)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range icon.Paths {
			fmt.Println(p.ToSVGPath())
		}
		return
	}
	fin, err := os.Open(in)
	if err != nil {
		log.Fatal(err)
	}
	defer fin.Close()
	img, err := svgraster.RasterSVGIconToImage(fin)
	if err != nil {
		log.Fatal(err)
	}
	writePNG(out, img)
}

func writePNG(out string, img *image.RGBA) {
	fout, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer fout.Close()
	if err := png.Encode(fout, img); err != nil {
		log.Fatal(err)
	}
}
