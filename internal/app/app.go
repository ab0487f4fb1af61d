package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rook-computer/icongen/internal/fonts"
	"github.com/rook-computer/icongen/internal/icon"
)

// App wires font resolution, composition and the final write together
// for the entry points.
type App struct {
	Variant   icon.Variant
	OutPath   string
	FontPaths []string
	Logger    Logger
}

func New() *App {
	return &App{
		Variant:   icon.Default(),
		OutPath:   "icon.png",
		FontPaths: fonts.DefaultPaths(),
		Logger:    NoopLogger{},
	}
}

// Run composes the configured variant and writes it to OutPath. Font
// resolution cannot fail; composition and the write propagate errors to
// the caller.
func (a *App) Run() error {
	face := fonts.Resolve(a.FontPaths, a.Variant.FontSize, a.Logger)
	img, err := icon.Compose(a.Variant, face)
	if err != nil {
		a.Logger.Errorf("app", "compose error: %v", err)
		return err
	}
	if err := icon.Save(img, a.OutPath); err != nil {
		a.Logger.Errorf("app", "save error: %v", err)
		return err
	}
	a.Logger.Infof("app", "icon written to %s", a.OutPath)
	return nil
}

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
