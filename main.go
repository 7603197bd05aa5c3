package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/chrome"
	"github.com/ytget/feed-client/internal/config"
	"github.com/ytget/feed-client/internal/localfeed"
	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/mockapi"
	"github.com/ytget/feed-client/internal/paging"
	"github.com/ytget/feed-client/internal/palette"
	"github.com/ytget/feed-client/internal/platform"
	"github.com/ytget/feed-client/internal/remote"
	"github.com/ytget/feed-client/internal/storage"
	"github.com/ytget/feed-client/internal/trending"
	"github.com/ytget/feed-client/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.feed-client"

	conversationCount = 12
)

func main() {
	dotEnvErr := config.LoadDotEnv(".env")
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	if dotEnvErr != nil {
		logger.Warn("ignoring .env", zap.Error(dotEnvErr))
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("feed client starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFeedTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	store := localfeed.NewStore(settings.Preferences(), logger)
	pageSize := settings.GetPageSize()

	// Home merges local posts over the bundled remote list
	remotePosts := mockapi.Posts(mockapi.PostCount)
	homePager := paging.NewPager(func() paging.Source {
		return paging.NewMergedSource(store, remotePosts)
	}, paging.Config{PageSize: pageSize, Logger: logger})

	videoClient := remote.NewVideoClient(cfg.FeedAPIBase, cfg.FetchTimeout, logger)
	videoPager := paging.NewPager(func() paging.Source {
		return paging.NewFetchSource(videoClient.FetchPosts)
	}, paging.Config{PageSize: pageSize, Logger: logger})

	trendingClient := remote.NewTrendingClient(cfg.TrendingFeedURL, cfg.FetchTimeout, logger)
	var trendingSvc *trending.Service
	appRoot := ""
	if platform.IsMobile() {
		// only the app sandbox is writable on a phone
		appRoot = myApp.Storage().RootURI().Path()
	}
	cache, err := openCache(cfg.CachePath, appRoot)
	if err != nil {
		logger.Warn("trending cache unavailable", zap.Error(err))
		trendingSvc = trending.NewService(trendingClient, nil, cfg.TrendingPlatform, cfg.TrendingLimit, logger)
	} else {
		defer func() { _ = cache.Close() }()
		trendingSvc = trending.NewService(trendingClient, cache, cfg.TrendingPlatform, cfg.TrendingLimit, logger)
	}
	defer trendingSvc.Stop()

	resolver := palette.NewResolver(palette.NewHTTPDecoder(cfg.FetchTimeout, remote.TrendingUA), logger)
	strip := ui.NewStatusStrip()
	coordinator := chrome.NewCoordinator(resolver, strip, fyne.Do, logger)
	defer coordinator.Close()

	ui.NewRootUI(myWindow, ui.Deps{
		Settings:      settings,
		Store:         store,
		HomePager:     homePager,
		VideoPager:    videoPager,
		Trending:      trendingSvc,
		Chrome:        coordinator,
		Strip:         strip,
		Conversations: mockapi.Conversations(conversationCount),
		Logger:        logger,
	})

	myWindow.ShowAndRun()
}

func openCache(path, appRoot string) (*storage.Cache, error) {
	resolved, err := platform.ResolveCachePath(path, appRoot)
	if err != nil {
		return nil, err
	}
	return storage.Open(resolved)
}
