// icongen renders the application icon and writes icon.png to the working
// directory. It takes no arguments and reads no configuration; the icon
// constants live in internal/icon.
package main

import (
	"fmt"
	"os"

	"github.com/rook-computer/icongen/internal/app"
)

func main() {
	a := app.New()
	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "icongen:", err)
		os.Exit(1)
	}
	fmt.Println("Icon created: " + a.OutPath)
}
