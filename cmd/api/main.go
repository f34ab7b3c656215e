package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/krispingal/eyego/internal/infrastructure"
	"github.com/krispingal/eyego/internal/interfaces/httphandler"
)

func main() {
	config, err := infrastructure.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger, err := infrastructure.NewLogger(config.Logging.Level)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync() // flush buffered entries

	routingTable := infrastructure.NewRoutingTable(config.Server.Variant)
	router, err := httphandler.NewRouter(routingTable, logger)
	if err != nil {
		logger.Fatal("Error building router", zap.Error(err))
	}

	ln, err := infrastructure.Listen(config.Server)
	if err != nil {
		logger.Fatal("Error starting server", zap.Int("port", config.Server.Port), zap.Error(err))
	}

	server := infrastructure.NewServer(router)
	if err := infrastructure.Serve(server, ln, logger); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
