package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/glog"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/peterbourgon/ff/v3"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/codek7-services/codek7-backend/api"
	"github.com/codek7-services/codek7-backend/clients"
	"github.com/codek7-services/codek7-backend/config"
	"github.com/codek7-services/codek7-backend/ingest"
	"github.com/codek7-services/codek7-backend/pipeline"
	"github.com/codek7-services/codek7-backend/pprof"
	"github.com/codek7-services/codek7-backend/reassembly"
	"github.com/codek7-services/codek7-backend/transcode"
	"github.com/codek7-services/codek7-backend/video"
)

func main() {
	err := flag.Set("logtostderr", "true")
	if err != nil {
		glog.Fatal(err)
	}
	vFlag := flag.Lookup("v")

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	fs := flag.NewFlagSet("codek7-video-worker", flag.ExitOnError)
	cli := config.Cli{}

	version := fs.Bool("version", false, "print application version")

	// ingest parameters
	fs.StringVar(&cli.KafkaBootstrapServers, "kafka-bootstrap-servers", config.DefaultKafkaBootstrapServers, "Comma separated list of Kafka bootstrap servers to consume chunk records from")
	fs.StringVar(&cli.KafkaConsumerGroup, "kafka-consumer-group", config.DefaultKafkaConsumerGroup, "Kafka consumer group id for the chunk topic")
	fs.StringVar(&cli.KafkaTopic, "kafka-topic", config.DefaultKafkaTopic, "Kafka topic carrying the chunked video uploads")

	// downstream services
	fs.StringVar(&cli.AMQPURL, "amqp-url", config.DefaultAMQPURL, "RabbitMQ url for progress events and moderation triggers")
	config.GRPCTargetFlag(fs, &cli.RepoServiceAddress, "repo-service-addr", config.DefaultRepoServiceAddress, "host:port of the repo service that stores finished artifacts")
	fs.StringVar(&cli.MetricsDBConnectionString, "metrics-db-connection-string", "", "Connection string to use for the metrics Postgres DB. Takes the form: host=X port=X user=X password=X dbname=X")

	// transcoding parameters
	fs.StringVar(&cli.WorkDir, "work-dir", "", "Directory to reassemble and transcode in. Defaults to the current directory")
	config.RenditionsFlag(fs, &cli.ProgressiveRenditions, "progressive-renditions", config.DefaultProgressiveRenditions, "Comma separated height:crf pairs for the progressive MP4 renditions")
	config.RenditionsFlag(fs, &cli.HLSRenditions, "hls-renditions", config.DefaultHLSRenditions, "Comma separated height:crf pairs for the HLS ladder")

	// listen addresses
	fs.StringVar(&cli.HTTPInternalAddress, "http-internal-addr", config.DefaultHTTPInternalAddress, "Address to bind for internal privileged HTTP commands")
	pprofPort := fs.Int("pprof-port", 6061, "Pprof listen port")

	// special parameters
	verbosity := fs.String("v", "", "Log verbosity.  {4|5|6}")
	_ = fs.String("config", "", "config file (optional)")

	err = ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("CODEK7"),
	)
	if err != nil {
		glog.Fatalf("error parsing cli: %s", err)
	}
	if len(fs.Args()) > 0 {
		glog.Fatalf("unexpected extra arguments on command line: %v", fs.Args())
	}
	err = flag.CommandLine.Parse(nil)
	if err != nil {
		glog.Fatal(err)
	}

	if *version {
		fmt.Printf("codek7-video-worker version: %s", config.Version)
		return
	}

	go func() {
		stdlog.Println(pprof.ListenAndServe(*pprofPort))
	}()

	if *verbosity != "" {
		err = vFlag.Value.Set(*verbosity)
		if err != nil {
			glog.Fatal(err)
		}
	}

	// All artifact paths are relative, so the working directory is the
	// transcode scratch space.
	if cli.WorkDir != "" {
		if err := os.MkdirAll(cli.WorkDir, 0755); err != nil {
			glog.Fatalf("Error creating work dir: %v", err)
		}
		if err := os.Chdir(cli.WorkDir); err != nil {
			glog.Fatalf("Error entering work dir: %v", err)
		}
	}

	// Emit high-cardinality per-video telemetry to a Postgres database if configured
	var metricsDB *pipeline.MetricsDB
	if cli.MetricsDBConnectionString != "" {
		db, err := sql.Open("postgres", cli.MetricsDBConnectionString)
		if err != nil {
			glog.Fatalf("Error creating postgres metrics connection: %v", err)
		}

		// Without this, we've run into issues with exceeding our open connection limit
		db.SetMaxOpenConns(2)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
		metricsDB = pipeline.NewMetricsDB(db)
	} else {
		glog.Info("Postgres metrics connection string was not set, postgres metrics are disabled.")
	}

	notifier, err := connectNotifier(cli.AMQPURL)
	if err != nil {
		glog.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer notifier.Close()

	repoConn, err := connectRepoService(cli.RepoServiceAddress)
	if err != nil {
		glog.Fatalf("Error creating repo service connection: %v", err)
	}
	defer repoConn.Close()

	table := reassembly.NewTable()
	coordinator := &pipeline.Coordinator{
		Table:                 table,
		Driver:                transcode.FFMPEG{},
		Uploader:              clients.NewRepoClient(repoConn),
		Notifier:              notifier,
		Prober:                video.Probe{},
		ProgressiveRenditions: cli.ProgressiveRenditions,
		HLSRenditions:         cli.HLSRenditions,
		MetricsDB:             metricsDB,
	}
	consumer := ingest.NewConsumer(cli, table, coordinator.Process)

	// Initialize root context; cancelling this prompts all components to shut down cleanly
	group, ctx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		return handleSignals(ctx)
	})

	group.Go(func() error {
		return api.ListenAndServeInternal(ctx, cli.HTTPInternalAddress)
	})

	group.Go(func() error {
		defer consumer.Close()
		return consumer.Run(ctx)
	})

	err = group.Wait()
	glog.Infof("Shutdown complete. Reason for shutdown: %s", err)
}

// connectNotifier retries the broker connection for a while before giving up;
// in most deployments the broker and the worker come up together.
func connectNotifier(amqpURL string) (*clients.AMQPNotifier, error) {
	var notifier *clients.AMQPNotifier
	connect := func() error {
		var err error
		notifier, err = clients.NewAMQPNotifier(amqpURL)
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 15)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, err
	}
	return notifier, nil
}

// connectRepoService dials with a blocking handshake so a bad address fails
// at boot instead of on the first upload.
func connectRepoService(addr string) (*grpc.ClientConn, error) {
	var conn *grpc.ClientConn
	dial := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		var err error
		conn, err = grpc.DialContext(ctx, addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 15)
	if err := backoff.Retry(dial, policy); err != nil {
		return nil, err
	}
	return conn, nil
}

func handleSignals(ctx context.Context) error {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	for {
		select {
		case s := <-c:
			glog.Errorf("caught signal=%v, attempting clean shutdown", s)
			return fmt.Errorf("caught signal=%v", s)
		case <-ctx.Done():
			return nil
		}
	}
}
