// preview renders an icon variant to the Linux framebuffer so it can be
// checked on the device screen. Dev utility; the generator itself is
// ./main.go at the repo root.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/icongen/internal/app"
	"github.com/rook-computer/icongen/internal/fonts"
	"github.com/rook-computer/icongen/internal/icon"
	"github.com/rook-computer/icongen/internal/system"
)

func main() {
	variantName := flag.String("variant", icon.Default().Name, "icon variant to preview: classic | shadowed")
	fbPath := flag.String("fb", "/dev/fb0", "framebuffer device")
	debug := flag.Bool("debug", false, "enable debug logging to ./icongen-preview.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONGEN_STDIO_LOG")
	flag.Parse()

	// Best-effort: capture panics to a file, since the console is left in
	// graphics mode while the preview runs.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("ICONGEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./icongen-preview.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("preview", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	variant, err := icon.ByName(*variantName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(2)
	}

	face := fonts.Resolve(fonts.DefaultPaths(), variant.FontSize, logger)
	img, err := icon.Compose(variant, face)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(1)
	}

	dev, err := fb.Open(*fbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preview: open framebuffer:", err)
		os.Exit(1)
	}
	defer dev.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = system.SetGraphicsModeWithLog(logger)
	_ = system.HideCursor()
	defer func() {
		_ = system.ShowCursor()
		_ = system.RestoreTextModeWithLog(logger)
	}()

	blitCentered(dev, img)
	logger.Infof("preview", "variant %s on %s, %dx%d", variant.Name, *fbPath, dev.Bounds().Dx(), dev.Bounds().Dy())
	fmt.Println("Previewing", variant.Name, "- Ctrl-C to exit")

	<-ctx.Done()
}
