// Package mcp exposes the payroll assistant as MCP tools over stdio.
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/chainpay-labs/paybot/internal/assistant"
	"github.com/chainpay-labs/paybot/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes payroll assistant tools.
type Server struct {
	store       *store.Store
	engine      *assistant.Engine
	companyName string
	mcp         *server.MCPServer

	mu       sync.Mutex
	sessions map[string]*assistant.Session
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(st *store.Store, engine *assistant.Engine, companyName string) *Server {
	s := &Server{
		store:       st,
		engine:      engine,
		companyName: companyName,
		sessions:    make(map[string]*assistant.Session),
	}

	s.mcp = server.NewMCPServer(
		"paybot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(askPayrollTool, s.handleAskPayroll)
	s.mcp.AddTool(payrollAnalyticsTool, s.handlePayrollAnalytics)
	s.mcp.AddTool(listEmployeesTool, s.handleListEmployees)
}

// session returns the conversation state for an ID, creating it on first use.
func (s *Server) session(id string) *assistant.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = assistant.NewSession()
		sess.ID = id
		s.sessions[id] = sess
	}
	return sess
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
