package main

import (
	"log"
	"os"
	"strconv"

	"querysift/pkg/engine"
	"querysift/pkg/feedback"
	"querysift/pkg/parser"
	"querysift/pkg/search"
)

const (
	stopWordsFile = "stopwords.txt"
	configFile    = "refine.yaml"
)

func main() {
	if len(os.Args) != 5 {
		log.Fatalf("usage: %s <api key> <engine id> <target precision> <query>\n", os.Args[0])
	}

	apiKey := os.Args[1]
	engineID := os.Args[2]
	target, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil || target < 0 || target > 1 {
		log.Fatalf("target precision must be a number in [0,1]: %q\n", os.Args[3])
	}
	query := os.Args[4]

	stops, err := parser.LoadStopWords(stopWordsFile)
	if err != nil {
		log.Fatalf("failed to load stop words: %v\n", err)
	}

	cfg := engine.DefaultConfig()
	if _, statErr := os.Stat(configFile); statErr == nil {
		cfg, err = engine.LoadConfig(configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v\n", err)
		}
	}

	log.Println("Parameters:")
	log.Printf("Client key  = %s\n", apiKey)
	log.Printf("Engine key  = %s\n", engineID)
	log.Printf("Query       = %s\n", query)
	log.Printf("Precision   = %v\n", target)

	client := search.NewGoogleClient(apiKey, engineID)
	loop := engine.NewLoop(client, feedback.NewPrompt(), stops, cfg)

	outcome, err := loop.Run(query, target)
	if err != nil {
		log.Fatalf("refinement failed: %v\n", err)
	}

	log.Printf("Final query: %q. Precision: %.2f. Iterations: %d. Reason: %s.\n",
		outcome.Query, outcome.Precision, outcome.Iterations, outcome.Reason)
}
