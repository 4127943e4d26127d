package main

import (
	"log"
	"runtime"

	"gllights/internal/app"
	"gllights/internal/config"

	"github.com/xlab/closer"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	a, err := app.New(config.Default())
	if err != nil {
		closer.Fatalln("startup failed:", err)
		return
	}

	// On SIGINT/SIGTERM closer runs this on its own goroutine: ask the loop
	// to stop and wait for the main thread to release the GL resources.
	done := make(chan struct{})
	closer.Bind(func() {
		a.RequestClose()
		<-done
	})

	a.Run()
	a.Close()
	close(done)
	log.Println("Shut down")
}
