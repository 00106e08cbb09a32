package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
)

const usage = `Inkpost - renders markdown blog posts

Usage: inkpost [OPTIONS] <COMMAND> [SLUG]

Commands:
	serve	Starts an HTTP server rendering posts at /blogs/<slug>
	render	Renders the post with the given slug to stdout or --output
	new	Creates a new post with the given slug in the content directory

Options:
	-r, --root <ROOT> Directory to use as root of project (default: .)
	-c, --config <CONFIG> Path to configuration file (default: config.toml)
	-a, --addr <ADDR> Address to listen on, overrides the configuration file
	-o, --output <FILE> File to write a rendered post to (default: stdout)
`

func main() {
	configFile := "config.toml"
	rootPath := ""
	addr := ""
	output := ""

	// parse flags
	flag.StringVarP(&configFile, "config", "c", configFile, "")
	flag.StringVarP(&rootPath, "root", "r", rootPath, "")
	flag.StringVarP(&addr, "addr", "a", addr, "")
	flag.StringVarP(&output, "output", "o", output, "")
	flag.Usage = func() { fmt.Print(usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return
	}

	// ensure rootPath has a trailing slash
	if rootPath != "" && !strings.HasSuffix(rootPath, "/") {
		rootPath += "/"
	}

	cfg, err := parseConfig(rootPath + configFile)
	if err != nil {
		log.Fatal("Error reading configuration file at %s: %s\n", rootPath+configFile, err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	contentDir := rootPath + cfg.ContentDir

	switch args[0] {
	case "serve":
		if err := serve(cfg, contentDir); err != nil {
			log.Fatal("Error serving: %s\n", err)
		}
	case "render":
		if len(args) < 2 {
			log.Fatal("Missing slug, usage: inkpost render <slug>\n")
		}
		if err := renderPost(cfg, contentDir, args[1], output); err != nil {
			log.Fatal("Error rendering %s: %s\n", args[1], err)
		}
	case "new":
		if len(args) < 2 {
			log.Fatal("Missing slug, usage: inkpost new <slug>\n")
		}
		if err := createPost(contentDir, args[1], cfg.Extension); err != nil {
			log.Fatal("Error creating post: %s\n", err)
		}
	default:
		flag.Usage()
	}
}

func newBlog(cfg Config, contentDir string) (*Blog, *Loader, error) {
	loader, err := NewLoader(os.DirFS(contentDir), cfg.Extension)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := NewPipeline(cfg.pipelineOptions())
	if err != nil {
		return nil, nil, err
	}

	return NewBlog(loader, pipeline), loader, nil
}

func serve(cfg Config, contentDir string) error {
	blog, loader, err := newBlog(cfg, contentDir)
	if err != nil {
		return err
	}
	log.Info("Found %d posts in %s\n", len(loader.Slugs()), contentDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		go func() {
			err := watchDir(ctx, contentDir, func() {
				if err := loader.Refresh(); err != nil {
					log.Warn("Error refreshing posts: %s\n", err)
					return
				}
				log.Info("Refreshed posts, %d found\n", len(loader.Slugs()))
			})
			if err != nil {
				log.Err("Error watching %s: %s\n", contentDir, err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewServer(blog),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("Listening on http://%s/blogs/\n", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func renderPost(cfg Config, contentDir string, slug string, output string) error {
	blog, _, err := newBlog(cfg, contentDir)
	if err != nil {
		return err
	}

	page, err := blog.Render(slug)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = os.Stdout.Write(page)
		return err
	}

	return atomic.WriteFile(output, bytes.NewReader(page))
}

func createPost(contentDir string, slug string, ext string) error {
	if !validSlug.MatchString(slug) {
		return fmt.Errorf("invalid slug %q", slug)
	}

	if err := os.MkdirAll(contentDir, 0755); err != nil {
		return err
	}

	file := contentDir + slug + ext
	if _, err := os.Stat(file); err == nil {
		return fmt.Errorf("%s already exists", file)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	title := strings.ReplaceAll(slug, "-", " ")
	content := fmt.Sprintf("---\ntitle: %q\ndescription: \"\"\nauthor: \"\"\ndate: %s\n---\n\n# %s\n", title, time.Now().Format("2006-01-02"), title)
	if err := atomic.WriteFile(file, strings.NewReader(content)); err != nil {
		return err
	}

	log.Info("Created %s\n", file)
	return nil
}
