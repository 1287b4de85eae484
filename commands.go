package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/listing"
	"github.com/Zachkp/portfolio/internal/recommend"
	"github.com/Zachkp/portfolio/internal/watch"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(flags *rootFlags) *cobra.Command {
	var (
		port       string
		contentDir string
		watchDir   bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		Long: `Serves the site and its JSON API. With --content-dir the catalogs are read
from disk instead of the built-in seed content; --watch reloads them when files change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("content-dir") {
				cfg.Content.Dir = contentDir
			}
			if cmd.Flags().Changed("watch") {
				cfg.Content.Watch = watchDir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&port, "port", "", "Port to listen on (default from PORT or 8080)")
	f.StringVar(&contentDir, "content-dir", "", "Content directory to load instead of the built-in content")
	f.BoolVar(&watchDir, "watch", false, "Reload content when files in --content-dir change")
	return cmd
}

// serve runs the HTTP server, and the content watcher when enabled, until
// ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	router, err := newRouter(a)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Content.Watch {
		if cfg.Content.Dir == "" {
			logger.Warn("Content watch requested without a content directory; serving built-in content")
		} else {
			w := watch.New(cfg.Content.Dir, a.store, logger.Named("watch"))
			g.Go(func() error { return w.Run(gctx) })
		}
	}

	return g.Wait()
}

func newPostsCmd(flags *rootFlags) *cobra.Command {
	var (
		q    listing.PostQuery
		sort string
	)
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.setup()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg.Content.Dir)
			if err != nil {
				return err
			}
			q.Sort = listing.ParseSortKey(sort)
			return writeJSON(cmd.OutOrStdout(), listing.FilterPosts(cat.Posts(), q))
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.Category, "category", "", "Only posts in this category")
	f.StringVar(&q.Tag, "tag", "", "Only posts with this tag")
	f.StringVar(&q.Search, "search", "", "Search titles, excerpts, categories and tags")
	f.StringVar(&sort, "sort", string(listing.SortLatest), "Sort order: latest, oldest or readTime")
	return cmd
}

func newProjectsCmd(flags *rootFlags) *cobra.Command {
	var (
		q    listing.ProjectQuery
		sort string
	)
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List portfolio projects as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.setup()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg.Content.Dir)
			if err != nil {
				return err
			}
			q.Sort = listing.ParseSortKey(sort)
			return writeJSON(cmd.OutOrStdout(), listing.FilterProjects(cat.Projects(), q))
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.Industry, "industry", "", "Only projects in this industry")
	f.StringVar(&q.Technology, "tech", "", "Only projects using this technology")
	f.StringVar(&q.Search, "search", "", "Search titles, clients, problems, industries and technologies")
	f.StringVar(&sort, "sort", string(listing.SortLatest), "Sort order: latest, oldest or impact")
	return cmd
}

func newRecommendCmd(flags *rootFlags) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "recommend <context>",
		Short: "Show the recommendations for a page context as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.setup()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg.Content.Dir)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Recommend.Seed
			}

			opts := []recommend.Option{recommend.WithLogger(logger)}
			if seed != 0 {
				opts = append(opts, recommend.WithSeed(seed))
			}
			engine := recommend.NewEngine(content.NewStore(cat), opts...)
			return writeJSON(cmd.OutOrStdout(), engine.StrategicRecommendations(args[0]))
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Fix random selection (default from RECOMMEND_SEED)")
	return cmd
}

func newInboxCmd(flags *rootFlags) *cobra.Command {
	var (
		limit  int
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List stored contact submissions as JSON, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.setup()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Contact.DBPath
			}

			inbox, err := contact.OpenSQLite(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer inbox.Close()

			subs, err := inbox.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), subs)
		},
	}

	f := cmd.Flags()
	f.IntVar(&limit, "limit", 20, "Maximum number of submissions to show")
	f.StringVar(&dbPath, "db", "", "Inbox database (default from CONTACT_DB_PATH)")
	return cmd
}

type catalogSummary struct {
	Bios         int `json:"bios"`
	Services     int `json:"services"`
	Testimonials int `json:"testimonials"`
	CaseStudies  int `json:"caseStudies"`
	BlogIdeas    int `json:"blogIdeas"`
	Posts        int `json:"posts"`
	Projects     int `json:"projects"`
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the content catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := flags.setup()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg.Content.Dir)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), catalogSummary{
				Bios:         len(cat.Bios()),
				Services:     len(cat.Services()),
				Testimonials: len(cat.Testimonials()),
				CaseStudies:  len(cat.CaseStudies()),
				BlogIdeas:    len(cat.BlogIdeas()),
				Posts:        len(cat.Posts()),
				Projects:     len(cat.Projects()),
			})
		},
	}
}
