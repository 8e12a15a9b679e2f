package mcp

import "github.com/mark3labs/mcp-go/mcp"

// askPayrollTool defines the ask_payroll MCP tool.
var askPayrollTool = mcp.NewTool("ask_payroll",
	mcp.WithDescription("Ask the payroll assistant a question about the company, employees, salaries, payments or supported crypto assets."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("Natural language question"),
	),
	mcp.WithString("session_id",
		mcp.Description("Conversation ID to continue. Omit to start a new conversation."),
	),
)

// payrollAnalyticsTool defines the payroll_analytics MCP tool.
var payrollAnalyticsTool = mcp.NewTool("payroll_analytics",
	mcp.WithDescription("Get aggregate payroll analytics: headcount, total and average salary, department breakdown, and payment totals."),
)

// listEmployeesTool defines the list_employees MCP tool.
var listEmployeesTool = mcp.NewTool("list_employees",
	mcp.WithDescription("List employees on the payroll, optionally filtered by department."),
	mcp.WithString("department",
		mcp.Description("Only return employees in this department"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of employees to return (default 50)"),
	),
)
