package pixavatar

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/esimov/pixavatar/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops holds the options of a command line generation run.
type Ops struct {
	// Dst is the destination file, the PipeName for the standard output
	// or a directory in case more than one avatar is generated.
	Dst, PipeName string
	// Data is rendered instead of generating new avatar data.
	Data string
	// Count is the number of avatars to generate.
	Count int
	// Workers is the number of avatars generated concurrently.
	Workers int
	// DataOnly writes the avatar data text instead of the SVG markup.
	DataOnly bool

	Generator *Generator
	Renderer  *Renderer
	Spinner   *utils.Spinner

	// stdout is the writer used for the pipe name. Defaults to os.Stdout.
	stdout io.Writer
}

// result holds the relevant information about a generated avatar.
type result struct {
	path string
	data string
	err  error
}

// job identifies a single avatar of a batch.
type job struct {
	index int
	seed  string
}

// Execute runs the generation process: a single avatar is written into the
// destination file or the standard output, several ones into the destination directory.
func (op *Ops) Execute() error {
	if op.Generator == nil {
		op.Generator = NewGenerator()
	}
	if op.Renderer == nil {
		op.Renderer = NewRenderer()
	}

	now := time.Now()
	if op.Spinner != nil {
		op.Spinner.Start()
	}

	var err error
	if op.Count > 1 {
		err = op.batch()
	} else {
		err = op.single()
	}

	if op.Spinner != nil {
		if err != nil {
			op.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ PIXAVATAR", utils.StatusMessage),
				utils.DecorateText("generating avatar failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			op.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ PIXAVATAR", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the avatar has been generated successfully ✔", utils.SuccessMessage),
			)
		}
		op.Spinner.Stop()
	}

	if err == nil && op.Dst != op.PipeName {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
	return err
}

// single generates or renders one avatar.
func (op *Ops) single() error {
	data := op.Data
	if data == "" {
		var err error
		if data, err = op.Generator.Generate(); err != nil {
			return err
		}
	}

	dst, closeFn, err := op.destination(op.Dst)
	if err != nil {
		return err
	}
	if err := op.write(dst, data); err != nil {
		closeFn()
		if op.Dst != op.PipeName {
			os.Remove(op.Dst)
		}
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}
	op.printOpStatus(op.Dst, data)

	return nil
}

// batch generates Count avatars into the destination directory concurrently.
func (op *Ops) batch() error {
	if op.Data != "" {
		return errors.New("avatar data can be rendered only into a single destination")
	}
	if op.Dst == op.PipeName {
		return errors.New("a destination directory is required when generating more than one avatar")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	// Limit the concurrently running workers to maxWorkers.
	workers := op.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = utils.Clamp(workers, 1, maxWorkers)

	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	jobs := op.produce(done)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(done, jobs, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var errs []error
	for res := range ch {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.path, res.err))
			continue
		}
		op.printOpStatus(res.path, res.data)
	}
	return errors.Join(errs...)
}

// produce starts a new goroutine emitting the seed of every avatar of the batch.
// A configured seed is suffixed with the avatar index, so that the batch stays reproducible.
// It finishes in case the done channel is getting closed.
func (op *Ops) produce(done <-chan struct{}) <-chan job {
	jobs := make(chan job)

	go func() {
		defer close(jobs)

		provider := op.Generator.SeedProvider
		if provider == nil {
			provider = DefaultSeedProvider
		}
		for i := 0; i < op.Count; i++ {
			seed := provider()
			if op.Generator.Seed != "" {
				seed = fmt.Sprintf("%s-%d", op.Generator.Seed, i)
			}
			select {
			case <-done:
				return
			case jobs <- job{index: i, seed: seed}:
			}
		}
	}()
	return jobs
}

// consumer reads the jobs from the jobs channel, generates the avatars and sends the results on a new channel.
func (op *Ops) consumer(
	done <-chan struct{},
	jobs <-chan job,
	res chan<- result,
) {
	for j := range jobs {
		path := filepath.Join(op.Dst, op.fileName(j.index))
		data, err := op.Generator.GenerateFromSeed(j.seed)
		if err == nil {
			err = op.writeFile(path, data)
		}

		select {
		case <-done:
			return
		case res <- result{
			path: path,
			data: data,
			err:  err,
		}:
		}
	}
}

// fileName returns the name of the index-th avatar of a batch.
func (op *Ops) fileName(index int) string {
	ext := ".svg"
	if op.DataOnly {
		ext = ".txt"
	}
	return fmt.Sprintf("avatar_%03d%s", index, ext)
}

// writeFile writes the avatar into a new file at path.
func (op *Ops) writeFile(path, data string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := op.write(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// write writes either the avatar data or the rendered avatar into w.
func (op *Ops) write(w io.Writer, data string) error {
	if op.DataOnly {
		_, err := fmt.Fprintln(w, data)
		return err
	}
	return op.Renderer.RenderTo(w, data)
}

// destination converts the destination path into a writer and its close function.
func (op *Ops) destination(out string) (io.Writer, func() error, error) {
	if out == op.PipeName {
		if op.stdout != nil {
			return op.stdout, func() error { return nil }, nil
		}
		if term.IsTerminal(int(os.Stdout.Fd())) && !op.DataOnly {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, func() error { return nil }, nil
	}

	dst, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, func() error {
		if err := dst.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
			return err
		}
		return nil
	}, nil
}

// printOpStatus displays the relevant information about the generated avatar.
func (op *Ops) printOpStatus(fname, data string) {
	if fname == op.PipeName {
		return
	}
	fmt.Fprintf(os.Stderr, "\nThe avatar %s has been saved as: %s %s\n",
		utils.DecorateText(data, utils.StatusMessage),
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		utils.DefaultColor,
	)
}
