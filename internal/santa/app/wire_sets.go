//go:build wireinject

package app

import "github.com/google/wire"

var santaProviderSet = wire.NewSet(
	newSantaDataRedis,
	newSantaMQValkey,
	newSantaMessageProvider,
	newSantaRepository,
	newSantaStores,
	newSantaReplyPublisher,
	newSantaServices,
	newSantaGameService,
	newSantaStreamConsumer,
	newSantaMQPipeline,
	newSantaHTTPMux,
	newSantaHTTPServer,
	newSantaServerApp,
)
