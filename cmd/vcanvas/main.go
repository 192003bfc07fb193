// Command vcanvas renders a scene document to PNG.
//
//	vcanvas [-backend gs|sk] [-o out.png] [-watch] [-v] [-system-fonts] scene.yaml
//
// With -watch the document is rendered again whenever it changes on disk,
// until the process is interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/backend"
	"github.com/gogpu/vcanvas/device"
	"github.com/gogpu/vcanvas/scene"
)

func main() {
	var (
		backendName = flag.String("backend", "", "backend to render with ("+strings.Join(backend.Available(), ", ")+")")
		output      = flag.String("o", "", "output file (default: document name with .png)")
		watch       = flag.Bool("watch", false, "re-render when the document changes")
		verbose     = flag.Bool("v", false, "enable debug logging")
		systemFonts = flag.Bool("system-fonts", false, "make installed fonts available to text")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml|scene.toml\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vcanvas.SetLogger(logger)

	docPath := flag.Arg(0)
	out := *output
	if out == "" {
		out = strings.TrimSuffix(docPath, filepath.Ext(docPath)) + ".png"
	}

	opts := []device.Option{device.WithBackend(*backendName)}
	if *systemFonts {
		opts = append(opts, device.WithSystemFonts(""))
	}
	dev, err := device.New(opts...)
	if err != nil {
		logger.Error("create device", "err", err)
		os.Exit(1)
	}

	if err := render(dev, docPath, out); err != nil {
		logger.Error("render", "err", err)
		if !*watch {
			os.Exit(1)
		}
	} else {
		logger.Info("rendered", "file", out, "backend", dev.Backend())
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = watchFile(ctx, docPath, func() {
		if err := render(dev, docPath, out); err != nil {
			logger.Error("render", "err", err)
			return
		}
		logger.Info("rendered", "file", out)
	})
	if err != nil {
		logger.Error("watch", "err", err)
		os.Exit(1)
	}
}

// render loads the document at docPath and writes it to out as PNG.
func render(dev *device.Device, docPath, out string) error {
	doc, err := scene.Load(docPath)
	if err != nil {
		return err
	}
	bt, err := doc.Render(dev)
	if err != nil {
		return err
	}
	return bt.SaveToFile(out)
}
