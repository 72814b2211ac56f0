package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blog-backend/internal/config"
	"blog-backend/pkg/container"
	"blog-backend/pkg/logger"
)

// cliApp giữ config và container, container chỉ được dựng khi command cần
type cliApp struct {
	cfg *config.Config
	c   *container.Container
}

func (a *cliApp) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Init(cfg.App.Environment)
	return nil
}

func (a *cliApp) container(ctx context.Context) (*container.Container, error) {
	if a.c != nil {
		return a.c, nil
	}
	if err := a.loadConfig(); err != nil {
		return nil, err
	}
	if a.cfg.IsMemory() {
		return nil, fmt.Errorf("blogctl needs STORAGE_TYPE=%s, the in-memory store lives inside the api process", config.StoragePostgres)
	}

	c, err := container.NewContainer(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	a.c = c
	return c, nil
}

func (a *cliApp) close() {
	if a.c != nil {
		a.c.Cleanup()
	}
}

func newRootCmd(app *cliApp) *cobra.Command {
	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Admin tasks for the blog: migrations, groups, users, cache, exports",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newMigrateCmd(app),
		newGroupCmd(app),
		newUserCmd(app),
		newCacheCmd(app),
		newPostsCmd(app),
	)
	return root
}
