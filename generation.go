package smosidebar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/eu-nephele/smo-sidebar/internal"
	"golang.org/x/sync/errgroup"
)

const generateWorkers = 4

type renderJob struct {
	Dir  string
	Page string
}

// Generate pre-renders the sidebar for every page into outDir. The fragment
// for the default page is written to outDir itself, the rest to a directory
// per page. Every fragment gets an index.json with the data it was rendered
// from.
func Generate(
	ctx context.Context, outDir string, conf Config,
	uiPrintln func(format string, a ...any),
) error {
	var printMu sync.Mutex

	printer := func(format string, a ...any) {
		if uiPrintln == nil {
			return
		}

		printMu.Lock()
		defer printMu.Unlock()

		uiPrintln(format, a...)
	}

	renderer, err := NewRenderer(conf)
	if err != nil {
		return err
	}

	jobs := make(chan renderJob)

	grp, gCtx := errgroup.WithContext(ctx)

	// Copy all assets.
	grp.Go(func() error {
		err := os.MkdirAll(outDir, 0o770)
		if err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		err = os.CopyFS(outDir, assetFS)
		if err != nil {
			return fmt.Errorf("write assets directory: %w", err)
		}

		return nil
	})

	// Queue the rendering of each page.
	grp.Go(func() error {
		defer close(jobs)

		queue := []renderJob{{Dir: outDir}}

		for _, e := range navigation {
			queue = append(queue, renderJob{
				Dir:  filepath.Join(outDir, e.ID),
				Page: e.ID,
			})
		}

		for _, job := range queue {
			// No new jobs once the context is done.
			err := gCtx.Err()
			if err != nil {
				return err
			}

			select {
			case jobs <- job:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}

		return nil
	})

	for range generateWorkers {
		grp.Go(func() error {
			for job := range jobs {
				err := renderFragment(renderer, job)
				if err != nil {
					return err
				}

				printer("Rendered %s", job.Dir)
			}

			return nil
		})
	}

	err = grp.Wait()
	if err != nil {
		return fmt.Errorf("generate sidebar fragments: %w", err)
	}

	return nil
}

func renderFragment(renderer *Renderer, job renderJob) (outErr error) {
	err := os.MkdirAll(job.Dir, 0o770)
	if err != nil {
		return fmt.Errorf("create %q: %w", job.Dir, err)
	}

	sidebar := renderer.Sidebar(job.Page)

	err = internal.MarshalFile(
		filepath.Join(job.Dir, "index.json"), sidebar)
	if err != nil {
		return fmt.Errorf("write sidebar data: %w", err)
	}

	file, err := os.Create(filepath.Join(job.Dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}

	defer internal.Close("index.html", file, &outErr)

	err = renderer.RenderSidebar(file, sidebar)
	if err != nil {
		return fmt.Errorf("render %q: %w", sidebar.ActivePage, err)
	}

	return nil
}
