package di

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"scholarly/config"
	"scholarly/domain"
	"scholarly/driver/arxiv"
	"scholarly/driver/kratos"
	"scholarly/driver/store_db"
	"scholarly/gateway/auth_gateway"
	"scholarly/gateway/library_gateway"
	"scholarly/gateway/profile_gateway"
	"scholarly/gateway/search_article_gateway"
	"scholarly/usecase/auth_usecase"
	"scholarly/usecase/library_usecase"
	"scholarly/usecase/search_articles_usecase"
	"scholarly/usecase/session_monitor_usecase"
	"scholarly/utils/rate_limiter"
)

type ApplicationComponents struct {
	SearchArticlesUsecase *search_articles_usecase.SearchArticlesUsecase
	LibraryUsecase        *library_usecase.LibraryUsecase
	AuthUsecase           *auth_usecase.AuthUsecase
	SessionMonitorUsecase *session_monitor_usecase.SessionMonitorUsecase
	StoreRepository       *store_db.StoreRepository

	// SessionEvents is owned by the container; the auth usecase writes
	// to it and the session monitor drains it.
	SessionEvents chan domain.SessionEvent
}

func NewApplicationComponents(pool *pgxpool.Pool, kratosClient *kratos.Client, cfg *config.Config) *ApplicationComponents {
	storeRepository := store_db.NewStoreRepository(pool)

	// External search upstream, rate limited per host
	externalLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)
	arxivClient := arxiv.NewClient(cfg, externalLimiter)
	searchGatewayImpl := search_article_gateway.NewSearchArticleGateway(arxivClient)
	searchArticlesUsecase := search_articles_usecase.NewSearchArticlesUsecase(searchGatewayImpl)

	libraryGatewayImpl := library_gateway.NewLibraryGateway(storeRepository)
	profileGatewayImpl := profile_gateway.NewProfileGateway(storeRepository)
	libraryUsecase := library_usecase.NewLibraryUsecase(
		libraryGatewayImpl,
		libraryGatewayImpl,
		libraryGatewayImpl,
		profileGatewayImpl,
	)

	sessionEvents := make(chan domain.SessionEvent, cfg.Session.EventBufferSize)
	authGatewayImpl := auth_gateway.NewAuthGateway(kratosClient)
	authUsecase := auth_usecase.NewAuthUsecase(authGatewayImpl, profileGatewayImpl, sessionEvents)
	sessionMonitorUsecase := session_monitor_usecase.NewSessionMonitorUsecase(sessionEvents, libraryUsecase)

	return &ApplicationComponents{
		SearchArticlesUsecase: searchArticlesUsecase,
		LibraryUsecase:        libraryUsecase,
		AuthUsecase:           authUsecase,
		SessionMonitorUsecase: sessionMonitorUsecase,
		StoreRepository:       storeRepository,
		SessionEvents:         sessionEvents,
	}
}
