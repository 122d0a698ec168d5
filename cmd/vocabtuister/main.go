// Command vocabtuister serves the vocab-testing HTTP protocol: POST a
// vocab list to /send-vocab, then POST settings to /session to receive a
// batch of generated questions.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/data"
	"github.com/rduo1009/vocab-tuister/rogo"
	"github.com/rduo1009/vocab-tuister/transfero"
)

const defaultPort = 5000

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	seed, useSeed := seedFromEnv()
	if !useSeed {
		seed = time.Now().UnixNano()
	}

	morph := transfero.NewRuleMorph(loadAdjToAdv(logger))
	store := rogo.NewStore(seed, morph, transfero.DefaultSynonyms())

	handler := rogo.NewHandler(store, logger)

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("vocabtuister listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func seedFromEnv() (int64, bool) {
	v, ok := os.LookupEnv("VOCAB_TUISTER_RANDOM_SEED")
	if !ok {
		return 0, false
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

func loadAdjToAdv(logger zerolog.Logger) map[string]string {
	var overrides map[string]string
	if err := json.Unmarshal(data.AdjToAdv, &overrides); err != nil {
		logger.Warn().Err(err).Msg("could not parse embedded adj_to_adv table, continuing without overrides")
		return nil
	}
	for adj, adv := range overrides {
		accido.RegisterAdjToAdvOverride(adj, adv)
	}
	return overrides
}
