package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/memstore"
	"blog-backend/internal/infrastructure/queue"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"

	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	followHandler "blog-backend/internal/domains/follow/handler"
	followRepo "blog-backend/internal/domains/follow/repository"
	followService "blog-backend/internal/domains/follow/service"
	groupHandler "blog-backend/internal/domains/group/handler"
	groupRepo "blog-backend/internal/domains/group/repository"
	groupService "blog-backend/internal/domains/group/service"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của api, worker và blogctl
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB // nil khi STORAGE_TYPE=memory
	Store      *memstore.Store      // nil khi STORAGE_TYPE=postgres
	Cache      cache.Cache          // page cache: Redis hoặc in-memory LRU
	Storage    storage.ObjectStorage
	Images     *storage.ImageProcessor
	Queue      *queue.Client // nil khi queue bị tắt, thumbnail build ngay trong request
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo    userRepo.RepositoryInterface
	GroupRepo   groupRepo.RepositoryInterface
	PostRepo    postRepo.RepositoryInterface
	CommentRepo commentRepo.RepositoryInterface
	FollowRepo  followRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService    userService.ServiceInterface
	GroupService   groupService.ServiceInterface
	PostService    postService.ServiceInterface
	CommentService commentService.ServiceInterface
	FollowService  followService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthHandler    *userHandler.AuthHandler
	PostHandler    *postHandler.PostHandler
	MediaHandler   *postHandler.MediaHandler
	GroupHandler   *groupHandler.GroupHandler
	CommentHandler *commentHandler.CommentHandler
	FollowHandler  *followHandler.FollowHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer dựng dependency graph theo thứ tự:
// infrastructure → repositories → services → handlers
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("storage", cfg.App.StorageType).Msg("🔧 Initializing DI Container...")

	c := &Container{
		Config:     cfg,
		Images:     storage.NewImageProcessor(),
		JWTManager: jwt.NewManager(cfg.JWT.Secret, cfg.JWT.SessionExpiry),
	}

	var err error
	if cfg.IsMemory() {
		err = c.initMemory()
	} else {
		err = c.initPostgres(ctx)
	}
	if err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

// initMemory: mọi thứ nằm trong process, dùng cho dev và tests
func (c *Container) initMemory() error {
	memCache, err := infraCache.NewMemoryCache(c.Config.Cache.MemoryCacheSize)
	if err != nil {
		return fmt.Errorf("failed to create memory cache: %w", err)
	}
	c.Cache = memCache
	c.Storage = storage.NewMemoryStorage()

	c.Store = memstore.New()
	c.UserRepo = c.Store.Users()
	c.GroupRepo = c.Store.Groups()
	c.PostRepo = c.Store.Posts()
	c.CommentRepo = c.Store.Comments()
	c.FollowRepo = c.Store.Follows()
	return nil
}

func (c *Container) initPostgres(ctx context.Context) error {
	cfg := c.Config

	// ----------------------------------------
	// DATABASE
	// ----------------------------------------
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Info().Msg("✅ Database connected")

	// ----------------------------------------
	// CACHE (non-critical)
	// ----------------------------------------
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical), using in-memory page cache")
		_ = redisCache.Close()

		memCache, err := infraCache.NewMemoryCache(cfg.Cache.MemoryCacheSize)
		if err != nil {
			return fmt.Errorf("failed to create memory cache: %w", err)
		}
		c.Cache = memCache
	} else {
		c.Cache = redisCache
		log.Info().Msg("✅ Redis connected")
	}

	// ----------------------------------------
	// OBJECT STORAGE
	// ----------------------------------------
	if cfg.MinIO.Enabled {
		minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init object storage: %w", err)
		}
		c.Storage = minioStorage
		log.Info().Str("bucket", cfg.MinIO.Bucket).Msg("✅ MinIO connected")
	} else {
		log.Warn().Msg("MINIO_ENABLED=false, uploaded images are kept in memory only")
		c.Storage = storage.NewMemoryStorage()
	}

	// ----------------------------------------
	// QUEUE
	// ----------------------------------------
	if cfg.Queue.Enabled {
		c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	}

	// ----------------------------------------
	// REPOSITORIES
	// ----------------------------------------
	pool := db.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.GroupRepo = groupRepo.NewPostgresRepository(pool)
	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.FollowRepo = followRepo.NewPostgresRepository(pool)
	return nil
}

func (c *Container) initServices() {
	c.UserService = userService.NewService(c.UserRepo, c.Config.App.PasswordHashCost)
	c.GroupService = groupService.NewService(c.GroupRepo)

	// Interface chứa *queue.Client nil vẫn khác nil, nên chỉ gán khi có queue
	var enqueuer postService.ThumbnailEnqueuer
	if c.Queue != nil {
		enqueuer = c.Queue
	}
	c.PostService = postService.NewService(c.PostRepo, c.GroupService, c.Storage, c.Images, enqueuer)

	c.CommentService = commentService.NewService(c.CommentRepo)
	c.FollowService = followService.NewService(c.FollowRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService, c.JWTManager, c.Config.JWT.CookieSecure)
	c.PostHandler = postHandler.NewPostHandler(
		c.PostService,
		c.UserService,
		c.GroupService,
		c.CommentService,
		c.FollowService,
	)
	c.MediaHandler = postHandler.NewMediaHandler(c.Storage)
	c.GroupHandler = groupHandler.NewGroupHandler(c.GroupService, c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService, c.PostService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService, c.UserService, c.PostService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close queue client")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close database")
		}
	}

	log.Info().Msg("✅ Container cleanup completed")
}
