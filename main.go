package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"promptfn/bedrock"
	"promptfn/config"
	"promptfn/handler"
	"promptfn/logging"
)

const version = "1.0.0"

func main() {
	config.ParseArgs()

	if config.CliArgs.Version {
		fmt.Println("promptfn " + version)
		return
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Cold-start setup: the Bedrock client is built once and shared by
	// every invocation.
	client, err := bedrock.NewClient(context.Background(), bedrock.Options{
		Region:    cfg.Region,
		ModelID:   cfg.ModelID,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		log.Fatalf("Failed to create Bedrock client: %v", err)
	}

	h := handler.New(client, handler.Defaults{
		MaxTokens:   cfg.Defaults.MaxTokens,
		Temperature: cfg.Defaults.Temperature,
		TopP:        cfg.Defaults.TopP,
	})

	if config.CliArgs.Invoke {
		if err := invokeOnce(h); err != nil {
			log.Fatalf("Invocation failed: %v", err)
		}
		return
	}

	if !config.CliArgs.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: handler.NewRouter(h),
	}

	log.Infof("Starting server on %s (model %s, region %s)", cfg.ListenAddress, cfg.ModelID, cfg.Region)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// invokeOnce runs a single invocation outside HTTP and prints the envelope.
// The envelope is the result, so a failure envelope still exits zero.
func invokeOnce(h *handler.Handler) error {
	var raw []byte
	if config.CliArgs.Prompt != "" {
		payload, err := json.Marshal(map[string]string{"prompt": config.CliArgs.Prompt})
		if err != nil {
			return err
		}
		raw = payload
	} else {
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading payload from stdin: %w", err)
		}
		raw = stdin
	}

	resp := h.Handle(context.Background(), raw)

	pretty, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}
