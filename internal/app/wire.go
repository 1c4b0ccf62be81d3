//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"m2t/internal/app/acquirer"
	"m2t/internal/app/api"
	"m2t/internal/app/api/whisper_cpp"
	"m2t/internal/app/audio"
	"m2t/internal/app/execx"
	"m2t/internal/app/metrics"
	"m2t/internal/app/pipeline"
	"m2t/internal/config"
)

// InitializePipeline assembles the transcription pipeline from config.
func InitializePipeline(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) *pipeline.Controller {
	wire.Build(
		execx.NewRunner,
		acquirer.New,
		audio.NewNormalizer,
		whisper_cpp.NewLocalTranscriber,
		metrics.NewRecorder,
		pipeline.NewController,
		wire.Bind(new(pipeline.MediaAcquirer), new(*acquirer.Acquirer)),
		wire.Bind(new(pipeline.AudioNormalizer), new(*audio.Normalizer)),
		wire.Bind(new(api.Transcriber), new(*whisper_cpp.LocalTranscriber)),
	)
	return &pipeline.Controller{}
}
