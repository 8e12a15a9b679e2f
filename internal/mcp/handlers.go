package mcp

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chainpay-labs/paybot/internal/payroll"
	"github.com/chainpay-labs/paybot/internal/store"
)

// handleAskPayroll runs one assistant turn for the caller's conversation.
func (s *Server) handleAskPayroll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sess, err := s.store.CreateSession(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("creating session: %v", err)), nil
		}
		sessionID = sess.ID
	} else if err := s.store.EnsureSession(ctx, sessionID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolving session: %v", err)), nil
	}

	snap, err := s.store.Snapshot(ctx, s.companyName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading payroll data: %v", err)), nil
	}

	reply := s.engine.Respond(ctx, s.session(sessionID), question, snap)

	// Transcript persistence is best effort; the answer stands either way.
	if _, err := s.store.AddTurn(ctx, store.ChatTurn{
		SessionID: sessionID,
		Message:   question,
		Response:  reply.Text,
		Kind:      reply.Kind,
	}); err != nil {
		log.Printf("mcp: persisting turn for session %s: %v", sessionID, err)
	}

	var sb strings.Builder
	sb.WriteString(reply.Text)
	sb.WriteString(fmt.Sprintf("\n\n(session: %s)", sessionID))
	return mcp.NewToolResultText(sb.String()), nil
}

// handlePayrollAnalytics returns a markdown summary of the payroll.
func (s *Server) handlePayrollAnalytics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.store.Snapshot(ctx, s.companyName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading payroll data: %v", err)), nil
	}

	a := payroll.BuildAnalytics(snap)

	var sb strings.Builder
	sb.WriteString("# Payroll Analytics\n\n")
	sb.WriteString(fmt.Sprintf("- Employees: %d (%d active)\n", a.TotalEmployees, a.ActiveCount))
	sb.WriteString(fmt.Sprintf("- Total monthly payroll: $%.2f\n", a.TotalPayroll))
	sb.WriteString(fmt.Sprintf("- Average salary: $%.2f\n", a.AverageSalary))
	if a.HighestPaid != nil {
		sb.WriteString(fmt.Sprintf("- Highest paid: %s ($%.2f)\n", a.HighestPaid.Name, a.HighestPaid.Salary))
	}
	if a.LowestPaid != nil {
		sb.WriteString(fmt.Sprintf("- Lowest paid: %s ($%.2f)\n", a.LowestPaid.Name, a.LowestPaid.Salary))
	}
	sb.WriteString(fmt.Sprintf("- Payments: %d completed ($%.2f), %d pending\n",
		a.CompletedCount, a.CompletedTotal, a.PendingCount))

	if len(a.Departments) > 0 {
		sb.WriteString("\n## Departments\n\n")
		names := make([]string, 0, len(a.Departments))
		for name := range a.Departments {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			d := a.Departments[name]
			sb.WriteString(fmt.Sprintf("- %s: %d employee(s), $%.2f total\n", name, d.Count, d.TotalSalary))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleListEmployees lists employees, optionally filtered by department.
func (s *Server) handleListEmployees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	department := request.GetString("department", "")
	limit := request.GetInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}

	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing employees: %v", err)), nil
	}

	var sb strings.Builder
	count := 0
	for _, e := range employees {
		if department != "" && !strings.EqualFold(e.Department, department) {
			continue
		}
		if count >= limit {
			break
		}
		dept := e.Department
		if dept == "" {
			dept = "Unassigned"
		}
		sb.WriteString(fmt.Sprintf("- %s — %s, %s ($%.2f, %s)\n", e.Name, e.Designation, dept, e.Salary, e.Status))
		count++
	}

	if count == 0 {
		if department != "" {
			return mcp.NewToolResultText(fmt.Sprintf("No employees found in department %q.", department)), nil
		}
		return mcp.NewToolResultText("No employees on the payroll yet."), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Found %d employee(s):\n\n%s", count, sb.String())), nil
}
