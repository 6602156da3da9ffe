// ABOUTME: MCP server setup for the vitals record store and aggregator.
// ABOUTME: Exposes record tools plus the metrics/report computations.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/pulsekit/vitals/internal/analytics"
	"github.com/pulsekit/vitals/internal/storage"
)

// Server wraps the MCP server with storage and analytics access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	agg       *analytics.Aggregator
	userID    string
	log       *logrus.Logger
}

// NewServer creates a new MCP server operating on one user's records.
func NewServer(store storage.Store, userID string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vitals",
			Version: "1.0.0",
		},
		nil,
	)

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
		agg:       analytics.New(store),
		userID:    userID,
		log:       log,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.WithField("user", s.userID).Info("starting vitals MCP server")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
