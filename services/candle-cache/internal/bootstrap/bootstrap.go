package bootstrap

import (
	"net/http"

	"github.com/muhammadchandra19/candlecache/pkg/logger"
	"github.com/muhammadchandra19/candlecache/pkg/questdb"
	"github.com/muhammadchandra19/candlecache/pkg/redis"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/internal/infrastructure/kafka/publisher"
	"github.com/muhammadchandra19/candlecache/services/candle-cache/pkg/config"
)

// Bootstrap is the bootstrap for the candle cache service.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Rest       Rest
	Repository Repository

	Config     config.Config
	Redis      redis.Client
	QuestDB    questdb.QuestDBClient
	HTTPClient *http.Client
	Publisher  *publisher.Publisher
}

// BoostrapConfig is the config for the bootstrap.
type BoostrapConfig struct {
	Config     config.Config
	Redis      redis.Client
	// QuestDB is optional; nil disables the archive sink.
	QuestDB    questdb.QuestDBClient
	HTTPClient *http.Client
	Logger     logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BoostrapConfig) (*Bootstrap, error) {
	b.Config = config.Config
	b.Redis = config.Redis
	b.QuestDB = config.QuestDB
	b.HTTPClient = config.HTTPClient
	b.Logger = config.Logger

	if err := b.registerRepository(); err != nil {
		return nil, err
	}
	if err := b.registerUsecase(); err != nil {
		return nil, err
	}
	b.registerRest()

	return b, nil
}

// Close releases the resources owned by the bootstrap.
func (b *Bootstrap) Close() error {
	if b.Publisher != nil {
		return b.Publisher.Close()
	}
	return nil
}
