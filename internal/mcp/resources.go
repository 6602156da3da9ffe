// ABOUTME: MCP resource implementations for health analytics.
// ABOUTME: Provides vitals://metrics, vitals://report, and vitals://logs/recent.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsekit/vitals/internal/models"
)

func (s *Server) registerResources() {
	// vitals://metrics - aggregate metrics over the default 30-day window
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vitals://metrics",
		Name:        "Health Metrics",
		Description: "Aggregate health metrics (score, trends, adherence) for the last 30 days",
		MIMEType:    "application/json",
	}, s.handleMetricsResource)

	// vitals://report - full report over the default 30-day window
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vitals://report",
		Name:        "Health Report",
		Description: "Full health report with engagement data and recommendations",
		MIMEType:    "application/json",
	}, s.handleReportResource)

	// vitals://logs/recent - last 7 days of raw health logs
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "vitals://logs/recent",
		Name:        "Recent Health Logs",
		Description: "Raw health log entries for the last 7 days",
		MIMEType:    "application/json",
	}, s.handleRecentLogsResource)
}

// Resource handlers

func (s *Server) handleMetricsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metrics, err := s.agg.GetHealthMetrics(ctx, s.userID, models.Range30Days)
	if err != nil {
		return nil, err
	}
	return jsonResource("vitals://metrics", metrics)
}

func (s *Server) handleReportResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	report, err := s.agg.GenerateHealthReport(ctx, s.userID, models.Range30Days)
	if err != nil {
		return nil, err
	}
	return jsonResource("vitals://report", report)
}

func (s *Server) handleRecentLogsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	since := models.Range7Days.Start(s.agg.Now())
	logs, err := s.store.HealthLogsSince(s.userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list health logs: %w", err)
	}

	result := map[string]interface{}{
		"since": since.Format(models.DateLayout),
		"count": len(logs),
		"logs":  logs,
	}
	return jsonResource("vitals://logs/recent", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
