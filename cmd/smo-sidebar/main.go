package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	smosidebar "github.com/eu-nephele/smo-sidebar"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		TUIPrintln("error: load .env: %v", err)
		os.Exit(1)
	}

	configFlag := &cli.PathFlag{
		Name:    "config",
		Value:   "smo-sidebar.json",
		EnvVars: []string{"SMO_SIDEBAR_CONFIG"},
	}

	app := cli.App{
		Name:  "smo-sidebar",
		Usage: "Render the SMO dashboard sidebar",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"SMO_SIDEBAR_LOG_LEVEL"},
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "Write the sidebar for a page to stdout",
				Action: renderAction,
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{
						Name:    "active-page",
						Value:   smosidebar.DefaultActivePage,
						EnvVars: []string{"SMO_SIDEBAR_ACTIVE_PAGE"},
					},
					&cli.StringFlag{
						Name:  "path",
						Usage: "Resolve the active page from a request path",
					},
				},
			},
			{
				Name:   "generate",
				Usage:  "Render the sidebar for every page",
				Action: generateAction,
				Flags: []cli.Flag{
					configFlag,
					&cli.PathFlag{
						Name:     "out",
						Usage:    "output directory for the fragments",
						Required: true,
						EnvVars:  []string{"SMO_SIDEBAR_OUT"},
					},
					&cli.StringFlag{
						Name:  "serve",
						Usage: "Serve the fragments for local preview: -serve :8080",
					},
				},
			},
			{
				Name:   "pages",
				Usage:  "List the navigation entries",
				Action: pagesAction,
				Flags: []cli.Flag{
					configFlag,
				},
			},
			{
				Name:      "inspect",
				Usage:     "Show the links of a rendered sidebar",
				ArgsUsage: "<file>",
				Action:    inspectAction,
				Flags: []cli.Flag{
					configFlag,
				},
			},
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		TUIPrintln("error: %v", err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.String("log-level")))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))

	return nil
}

func renderAction(c *cli.Context) error {
	conf, err := smosidebar.LoadConfig(c.Path("config"))
	if err != nil {
		return err
	}

	renderer, err := smosidebar.NewRenderer(conf)
	if err != nil {
		return err
	}

	if c.IsSet("path") {
		slog.Debug("resolving active page from path",
			"path", c.String("path"))

		return renderer.RenderPath(c.App.Writer, c.String("path"))
	}

	return renderer.Render(c.App.Writer, c.String("active-page"))
}

func generateAction(c *cli.Context) error {
	var (
		configPath = c.Path("config")
		outDir     = c.Path("out")
		serveAddr  = c.String("serve")
	)

	start := time.Now()

	err := os.RemoveAll(outDir)
	if err != nil {
		return fmt.Errorf("clear output directory: %w", err)
	}

	err = os.MkdirAll(outDir, 0o770)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	conf, err := smosidebar.LoadConfig(configPath)
	if err != nil {
		return err
	}

	err = smosidebar.Generate(c.Context, outDir, conf, TUIPrintln)
	if err != nil {
		return err
	}

	TUIPrintln("Generated sidebar in %s", time.Since(start).String())

	if serveAddr != "" {
		TUIPrintln("Serving sidebar at %s", serveAddr)

		server := http.Server{
			Addr:              serveAddr,
			Handler:           http.FileServerFS(os.DirFS(outDir)),
			ReadHeaderTimeout: 5 * time.Second,
		}

		err := server.ListenAndServe()
		if err != nil {
			return fmt.Errorf("serve static files: %w", err)
		}
	}

	return nil
}

func pagesAction(c *cli.Context) error {
	conf, err := smosidebar.LoadConfig(c.Path("config"))
	if err != nil {
		return err
	}

	sidebar := smosidebar.NewSidebar("", conf)

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "PAGE\tLABEL\tHREF")

	for _, item := range sidebar.Menu {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Page, item.Title, item.HRef)
	}

	err = tw.Flush()
	if err != nil {
		return fmt.Errorf("write page list: %w", err)
	}

	return nil
}

func inspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one file to inspect")
	}

	conf, err := smosidebar.LoadConfig(c.Path("config"))
	if err != nil {
		return err
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("open sidebar: %w", err)
	}

	defer f.Close()

	m, err := smosidebar.ParseMarkup(f, conf.ActiveClass)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "logo:\t%s\n", m.Logo)
	_, _ = fmt.Fprintf(tw, "active page:\t%s\n", m.ActivePage)

	if m.Version != "" {
		_, _ = fmt.Fprintf(tw, "version:\t%s\n", m.Version)
	}

	_, _ = fmt.Fprintln(tw)

	for _, l := range m.Links {
		var marks []string

		if l.Active {
			marks = append(marks, "active")
		}

		if l.SeparatorBefore {
			marks = append(marks, "separated")
		}

		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			l.Page, l.Label, l.HRef, strings.Join(marks, ","))
	}

	err = tw.Flush()
	if err != nil {
		return fmt.Errorf("write link list: %w", err)
	}

	return nil
}

func TUIPrintln(format string, a ...any) {
	_, err := fmt.Fprintf(os.Stderr, format+"\n", a...)
	if err != nil {
		println(err.Error())
	}
}
