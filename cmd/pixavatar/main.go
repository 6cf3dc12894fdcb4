package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/esimov/pixavatar"
	"github.com/esimov/pixavatar/server"
	"github.com/esimov/pixavatar/utils"
)

const HelpBanner = `
┌─┐┬─┐ ┬┌─┐┬  ┬┌─┐┌┬┐┌─┐┬─┐
├─┘│┌┴┬┘├─┤└┐┌┘├─┤ │ ├─┤├┬┘
┴  ┴┴ └─┴ ┴ └┘ ┴ ┴ ┴ ┴ ┴┴└─

Symmetric pixel-art avatar generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	seed        = flag.String("seed", "", "Seed of the avatar (random if empty)")
	complexity  = flag.Int("complexity", pixavatar.DefaultComplexity, "Grid size in cells")
	shape       = flag.String("shape", string(pixavatar.SquareShape), "Cell shape: square or circle")
	size        = flag.Int("size", pixavatar.DefaultSize, "Size of the SVG viewBox")
	separator   = flag.String("sep", pixavatar.DefaultSeparator, "Avatar data separator")
	data        = flag.String("data", "", "Render the provided avatar data")
	destination = flag.String("out", pipeName, "Destination file, directory or - for stdout")
	count       = flag.Int("count", 1, "Number of avatars to generate")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of avatars to generate concurrently")
	printData   = flag.Bool("print-data", false, "Output the avatar data instead of the SVG")
	ascii       = flag.Bool("ascii", false, "Print the avatar grid to the terminal")
	serve       = flag.String("serve", "", "Serve the avatars over HTTP on the provided address")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *serve != "" {
		listen(*serve)
		return
	}

	shp, err := pixavatar.ShapeByName(*shape)
	if err != nil {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\n%v", utils.ErrorMessage), err)
	}

	gen := pixavatar.NewGenerator()
	gen.Complexity = *complexity
	gen.Separator = *separator
	gen.Seed = *seed

	rnd := pixavatar.NewRenderer()
	rnd.Shape = shp
	rnd.Size = *size
	rnd.Separator = *separator

	// Fix the seed up front, so that the printed grid matches the generated avatar.
	if *data == "" && *count <= 1 {
		if gen.Seed == "" {
			gen.Seed = pixavatar.DefaultSeedProvider()
		}
		if *data, err = gen.Generate(); err != nil {
			log.Fatalf(utils.DecorateText("Error generating the avatar data: %v", utils.ErrorMessage), err)
		}
	}
	if *ascii && *data != "" {
		bitmap, err := rnd.Bitmap(*data)
		if err != nil {
			log.Fatalf(utils.DecorateText("Error reading the avatar data: %v", utils.ErrorMessage), err)
		}
		fmt.Fprint(os.Stderr, utils.Bitmap(bitmap))
	}

	op := &pixavatar.Ops{
		Dst:       *destination,
		PipeName:  pipeName,
		Data:      *data,
		Count:     *count,
		Workers:   *workers,
		DataOnly:  *printData,
		Generator: gen,
		Renderer:  rnd,
	}

	if *destination != pipeName {
		spinnerText := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ PIXAVATAR", utils.StatusMessage),
			utils.DecorateText("⇢ generating avatar...", utils.DefaultMessage))
		op.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*80, true)

		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signalChan
			op.Spinner.RestoreCursor()
			os.Exit(1)
		}()
	}

	if err := op.Execute(); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the avatar: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
}

// listen starts the HTTP server with the avatar defaults provided through the flags.
func listen(addr string) {
	opts := server.DefaultOptions()
	opts.Complexity = *complexity
	opts.Size = *size
	opts.Shape = *shape

	if _, err := pixavatar.ShapeByName(opts.Shape); err != nil {
		log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("⚡ PIXAVATAR", utils.StatusMessage),
		utils.DecorateText("serving avatars on "+addr, utils.SuccessMessage),
	)
	if err := http.ListenAndServe(addr, server.New(opts)); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
}
