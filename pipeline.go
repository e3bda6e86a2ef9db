package targa

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// findFiles walks base sending every supported image to the workers. Only
// the first source, in lexical order, that maps to a given output is sent,
// later ones such as "a.png" after "a.gif" are skipped.
func (t *Targa) findFiles(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		claimed := make(map[string]string)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return errors.Wrapf(err, "unable to walk %s", file)
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !Supported(file) {
				return nil
			}

			dst := OutputName(file)
			if src, ok := claimed[dst]; ok {
				t.logger.Printf("Skipping \"%s\", \"%s\" is already written from \"%s\"\n", file, dst, src)
				return nil
			}
			claimed[dst] = file

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (t *Targa) fileWorker(ctx context.Context, in <-chan string, opts Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if ctx.Err() != nil {
				return
			}
			if err := t.ConvertFile(file, OutputName(file), opts); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

// waitForPipeline returns the first error from any stage. The other stages
// are cancelled and drained so none are left blocked.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if first == nil {
			first = err
			cancel()
		}
	}
	return first
}

// mergeErrors fans in the non-nil errors from every stage.
func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			defer wg.Done()
			for err := range c {
				if err != nil {
					out <- err
				}
			}
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan converts every supported image found under path, writing each TGA
// file alongside its source.
func (t *Targa) Scan(path string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := t.findFiles(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < runtime.NumCPU(); i++ {
		errc, err := t.fileWorker(ctx, files, opts)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}
