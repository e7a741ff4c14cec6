// Package mcp exposes the demo engine over the Model Context Protocol:
// every registered action becomes a tool, and the page catalog is published
// as a resource for agent introspection.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Server wraps the demo engine and exposes it as an MCP server.
type Server struct {
	demo      *hodos.Demo
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server over the given engine.
func NewServer(demo *hodos.Demo) *Server {
	s := &Server{
		demo:      demo,
		mcpServer: server.NewMCPServer("hodos-demo", hodos.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, shutting down
// gracefully when ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// ToolName maps an action name onto the MCP tool namespace.
func ToolName(actionName string) string {
	return strings.ReplaceAll(actionName, ".", "_")
}

func (s *Server) registerTools() {
	for _, spec := range s.demo.Actions() {
		s.mcpServer.AddTool(toolFromSpec(spec), s.toolHandler(spec))
	}
}

func toolFromSpec(spec action.Spec) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(fmt.Sprintf("%s (%s). %s", spec.Title, spec.Group, spec.Description)),
	}
	for _, in := range spec.Inputs {
		opts = append(opts, toolInput(in))
	}
	return mcp.NewTool(ToolName(spec.Name), opts...)
}

func toolInput(in domain.InputField) mcp.ToolOption {
	desc := in.Label
	if len(in.Choices) > 0 {
		desc = fmt.Sprintf("%s (one of: %s)", desc, strings.Join(in.Choices, ", "))
	}
	switch in.Widget {
	case domain.WidgetSlider:
		return mcp.WithNumber(in.Name, mcp.Description(desc))
	case domain.WidgetCheckbox:
		return mcp.WithBoolean(in.Name, mcp.Description(desc))
	case domain.WidgetCheckboxGroup, domain.WidgetDateRange:
		return mcp.WithArray(in.Name,
			mcp.Description(desc),
			mcp.Items(map[string]any{"type": "string"}),
		)
	default:
		return mcp.WithString(in.Name, mcp.Description(desc))
	}
}

func (s *Server) toolHandler(spec action.Spec) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.demo.Invoke(ctx, domain.Request{
			Action: spec.Name,
			Params: request.GetArguments(),
		}, action.DiscardSink{})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", spec.Name, err)), nil
		}

		payload, err := json.Marshal(outputsPayload(spec, result))
		if err != nil {
			return nil, fmt.Errorf("encoding result: %w", err)
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// outputsPayload keys each output by its registered field name so agents
// can address individual values.
func outputsPayload(spec action.Spec, result domain.Result) map[string]any {
	payload := make(map[string]any, len(result))
	for i, out := range result {
		payload[spec.Outputs[i].Name] = out
	}
	return payload
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("hodos://catalog", "Demo Page Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := json.Marshal(s.demo.Catalog())
		if err != nil {
			return nil, fmt.Errorf("encoding catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "hodos://catalog",
				MIMEType: "application/json",
				Text:     string(payload),
			},
		}, nil
	})
}
