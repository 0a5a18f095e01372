package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"wavelab/internal/graphics"

	"github.com/xlab/closer"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s file.png...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	defer closer.Close()

	failed := 0
	closer.Bind(func() {
		if failed > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d files could not be read\n", failed, flag.NArg())
		}
	})

	closer.Checked(func() error {
		for _, path := range flag.Args() {
			if !probe(os.Stdout, path) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d unreadable files", failed)
		}
		return nil
	}, false)
}

// probe prints the header of one PNG, or the read error with the 1x1
// default the viewers fall back to
func probe(w io.Writer, path string) bool {
	info, err := graphics.ReadPNG(path)
	if err != nil {
		d := graphics.DefaultImage().Rect
		fmt.Fprintf(w, "%s: %v (using %dx%d default)\n", path, err, d.Dx(), d.Dy())
		return false
	}

	fmt.Fprintf(w, "%s: %dx%d %s, %d-bit, %d pass(es), %s\n",
		path, info.Width, info.Height, info.ColorTypeName(), info.BitDepth,
		info.Passes(), interlaceName(info.Interlaced))
	return true
}

func interlaceName(interlaced bool) string {
	if interlaced {
		return "adam7"
	}
	return "not interlaced"
}
