// Command payfix generates a batch of synthetic payment records and writes
// it as JSON to stdout or a file. Intended for seeding demo dashboards and
// local development environments, so every run is self-contained: no
// network, no database, no credentials.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/commercekit/payfix/internal/config"
	"github.com/commercekit/payfix/internal/fixtures"
	"github.com/commercekit/payfix/internal/generator"
	"github.com/commercekit/payfix/internal/logging"
	"go.uber.org/zap"
)

func main() {
	countFlag := flag.Int("count", -1, "records to generate (overrides FIXTURE_COUNT)")
	seedFlag := flag.Int64("seed", 0, "random seed for reproducible batches (overrides FIXTURE_SEED)")
	outFlag := flag.String("out", "", "output file (overrides OUTPUT_PATH; default stdout)")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if *countFlag >= 0 {
		cfg.Fixtures.Count = *countFlag
	}
	if *seedFlag != 0 {
		cfg.Fixtures.Seed = *seedFlag
	}
	if *outFlag != "" {
		cfg.Output.Path = *outFlag
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	opts := []generator.Option{}
	if cfg.Fixtures.Seed != 0 {
		opts = append(opts, generator.WithRand(rand.New(rand.NewSource(cfg.Fixtures.Seed))))
	}
	if len(cfg.Fixtures.Statuses) > 0 {
		opts = append(opts, generator.WithStatusPool(cfg.Fixtures.Statuses...))
	}
	if len(cfg.Fixtures.Methods) > 0 {
		opts = append(opts, generator.WithMethodPool(cfg.Fixtures.Methods...))
	}

	service := fixtures.NewService(generator.New(opts...), logger)
	batch := service.Generate(cfg.Fixtures.Count)

	var payload []byte
	if cfg.Output.Pretty {
		payload, err = json.MarshalIndent(batch, "", "  ")
	} else {
		payload, err = json.Marshal(batch)
	}
	if err != nil {
		logger.Fatal("Failed to encode batch", zap.Error(err))
	}
	payload = append(payload, '\n')

	if cfg.Output.Path == "" {
		if _, err := os.Stdout.Write(payload); err != nil {
			logger.Fatal("Failed to write batch", zap.Error(err))
		}
		return
	}

	if err := os.WriteFile(cfg.Output.Path, payload, 0o644); err != nil {
		logger.Fatal("Failed to write batch", zap.Error(err), zap.String("path", cfg.Output.Path))
	}
	logger.Info("Fixture batch written",
		zap.String("path", cfg.Output.Path),
		zap.Int("count", len(batch)),
	)
}
