package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/markdown"
	"github.com/Zachkp/portfolio/internal/recommend"
)

// app holds everything a request or command needs.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *content.Store
	engine   *recommend.Engine
	contact  *contact.Service
	inbox    *contact.SQLiteSubmitter
	markdown *markdown.Renderer
}

// loadCatalog reads dir, or the embedded seed content when dir is empty.
func loadCatalog(dir string) (*content.Catalog, error) {
	if dir == "" {
		return content.LoadEmbedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	cat, err := content.Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load content from %s: %w", dir, err)
	}
	return cat, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	cat, err := loadCatalog(cfg.Content.Dir)
	if err != nil {
		return nil, err
	}
	store := content.NewStore(cat)

	opts := []recommend.Option{recommend.WithLogger(logger.Named("recommend"))}
	if cfg.Recommend.Seed != 0 {
		opts = append(opts, recommend.WithSeed(cfg.Recommend.Seed))
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		engine:   recommend.NewEngine(store, opts...),
		markdown: markdown.New(),
	}

	var submitter contact.Submitter = contact.SimulatedSubmitter{Delay: cfg.Contact.Delay}
	if cfg.Contact.Backend == "sqlite" {
		inbox, err := contact.OpenSQLite(ctx, cfg.Contact.DBPath)
		if err != nil {
			return nil, err
		}
		a.inbox = inbox
		submitter = inbox
	}
	a.contact = contact.NewService(submitter, logger.Named("contact"))

	logger.Debug("Content loaded",
		zap.Int("posts", len(cat.Posts())),
		zap.Int("projects", len(cat.Projects())),
		zap.String("contact_backend", cfg.Contact.Backend))
	return a, nil
}

func (a *app) Close() error {
	if a.inbox != nil {
		return a.inbox.Close()
	}
	return nil
}
