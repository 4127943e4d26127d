// Command shadercheck compiles and links the demo's shader programs in a
// hidden window and prints the driver log of any failure.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"gllights/internal/config"
	"gllights/internal/graphics"
	"gllights/internal/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	win, err := window.Create(config.Window{Title: "shadercheck", Width: 1, Height: 1, Hidden: true})
	if err != nil {
		log.Fatal(err)
	}
	defer win.Terminate()

	assets := config.Default().Assets
	programs := []struct {
		name, vertex, fragment string
	}{
		{"lit", assets.LitVertex, assets.LitFragment},
		{"light-source", assets.MarkerVertex, assets.MarkerFragment},
	}

	failed := 0
	for _, p := range programs {
		prog, err := graphics.LoadProgram(p.name, p.vertex, p.fragment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", p.name, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s (program %d)\n", p.name, prog.ID)
		prog.Delete()
	}

	if failed > 0 {
		// deferred cleanup is skipped by os.Exit
		win.Terminate()
		os.Exit(1)
	}
}
