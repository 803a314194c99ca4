// nesgo loads an iNES ROM image and runs it against the core: bus, CPU,
// RAM, PPU register stub, and a Mapper 0 cartridge. It has no real video
// output; -window opens an SDL2 debug surface that paints the PPU status
// register as a solid color so a human can tell the console is alive,
// and -debug exposes a pprof HTTP server for profiling a running session.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/taraka/nesgo/cartridge"
	"github.com/taraka/nesgo/console"
	"github.com/taraka/nesgo/disassemble"
)

var (
	cart    = flag.String("cart", "", "Path to an iNES ROM image to load")
	debug   = flag.Bool("debug", false, "If true, serve pprof over HTTP")
	port    = flag.Int("port", 6060, "Port for the pprof HTTP server")
	window  = flag.Bool("window", false, "If true, open an SDL2 debug window")
	trace   = flag.Bool("trace", false, "If true, disassemble and print every instruction before it runs")
	clocks  = flag.Uint64("clocks", 0, "Stop after this many CPU clocks (0 runs until the window is closed or forever headless)")
)

func main() {
	flag.Parse()
	if *cart == "" {
		log.Fatalf("usage: %s -cart <path-to.nes>", os.Args[0])
	}

	if *debug {
		go func() {
			log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", *port), nil))
		}()
	}

	f, err := os.Open(*cart)
	if err != nil {
		log.Fatalf("can't open %s: %v", *cart, err)
	}
	defer f.Close()

	c, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("can't load %s: %v", *cart, err)
	}

	nes := console.New()
	nes.Insert(c)
	nes.Reset()

	if *window {
		runWithWindow(nes)
		return
	}
	run(nes)
}

func run(nes *console.Console) {
	for *clocks == 0 || nes.Clocks() < *clocks {
		if *trace && nes.CPU.Wait() == 0 {
			out, _ := disassemble.Step(nes.CPU.PC, nes.Bus)
			fmt.Println(out)
		}
		if err := nes.Clock(); err != nil {
			log.Fatalf("clock %d: %v", nes.Clocks(), err)
		}
	}
}

// runWithWindow drives the console the same way run does, but paints an
// SDL2 window from the PPU status register before every CPU clock so the
// console's liveness is visible without a real PPU. This is a
// debugging aid, not a renderer: the core has no framebuffer.
func runWithWindow(nes *console.Console) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("can't init SDL: %v", err)
	}
	defer sdl.Quit()

	win, err := sdl.CreateWindow("nesgo debug", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		256, 240, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("can't create window: %v", err)
	}
	defer win.Destroy()

	surface, err := win.GetSurface()
	if err != nil {
		log.Fatalf("can't get window surface: %v", err)
	}

	running := true
	for running && (*clocks == 0 || nes.Clocks() < *clocks) {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			if _, ok := e.(*sdl.QuitEvent); ok {
				running = false
			}
		}

		status := nes.Bus.Read(0x2002)
		shade := uint8(status)
		surface.FillRect(nil, sdl.MapRGB(surface.Format, shade, shade, shade))
		win.UpdateSurface()

		if err := nes.Clock(); err != nil {
			log.Fatalf("clock %d: %v", nes.Clocks(), err)
		}
	}
}
