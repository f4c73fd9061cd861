package config

import (
	"flag"
	"net/url"
	"strings"

	"github.com/codek7-services/codek7-backend/video"
)

type Cli struct {
	KafkaBootstrapServers     string
	KafkaConsumerGroup        string
	KafkaTopic                string
	AMQPURL                   string
	RepoServiceAddress        string
	HTTPInternalAddress       string
	MetricsDBConnectionString string
	WorkDir                   string
	ProgressiveRenditions     []video.Rendition
	HLSRenditions             []video.Rendition
}

// RenditionsFlag registers a flag using the "height:crf[,height:crf...]"
// syntax. The default must parse or we panic at startup.
func RenditionsFlag(fs *flag.FlagSet, dest *[]video.Rendition, name, value, usage string) {
	parsed, err := video.ParseRenditions(value)
	if err != nil {
		panic(err)
	}
	*dest = parsed
	fs.Func(name, usage, func(s string) error {
		parsed, err := video.ParseRenditions(s)
		if err != nil {
			return err
		}
		*dest = parsed
		return nil
	})
}

// GRPCTargetFlag registers a flag that accepts either a plain host:port or a
// URL form like http://[::1]:50051, normalizing the latter to its host part.
func GRPCTargetFlag(fs *flag.FlagSet, dest *string, name, value, usage string) {
	*dest = value
	fs.Func(name, usage, func(s string) error {
		normalized, err := NormalizeGRPCTarget(s)
		if err != nil {
			return err
		}
		*dest = normalized
		return nil
	})
}

func NormalizeGRPCTarget(s string) (string, error) {
	if !strings.Contains(s, "://") {
		return s, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}
	return u.Host, nil
}
