// Package mcptools exposes the search engine and the assistant as Model
// Context Protocol tools, so agents can call them the same way the web
// front-end calls the HTTP API.
package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/uidejarvis/jarvis/internal/domain/search"
	"github.com/uidejarvis/jarvis/internal/version"
)

// AnswerGenerator produces an answer for a user message.
type AnswerGenerator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// BinarySearchInput is the argument object of the binary_search tool.
type BinarySearchInput struct {
	Array  []int `json:"array" jsonschema:"non-empty list of integers sorted in ascending order"`
	Target int   `json:"target" jsonschema:"value to look for"`
}

// StepOutput is one recorded iteration of the search.
type StepOutput struct {
	Low        int    `json:"low"`
	High       int    `json:"high"`
	Mid        int    `json:"mid"`
	MidValue   int    `json:"mid_value"`
	Comparison string `json:"comparison" jsonschema:"outcome of comparing the midpoint value with the target"`
}

// BinarySearchOutput is the structured result of the binary_search tool.
type BinarySearchOutput struct {
	Found bool         `json:"found"`
	Index *int         `json:"index,omitempty" jsonschema:"position of the target, present only when found"`
	Steps []StepOutput `json:"steps"`
}

// ChatInput is the argument object of the chat tool.
type ChatInput struct {
	Message string `json:"message" jsonschema:"message from the student"`
}

// ChatOutput is the structured result of the chat tool.
type ChatOutput struct {
	Answer string `json:"answer"`
}

// NewServer builds an MCP server with the binary_search tool and, when
// answers is non-nil, the chat tool.
func NewServer(answers AnswerGenerator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "jarvis", Version: version.Version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "binary_search",
		Description: "Run binary search over a sorted integer array and return every step taken.",
	}, binarySearch)

	if answers != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "chat",
			Description: "Ask Jarvis, the UIDE student assistant. Answers are in Spanish.",
		}, chatTool(answers))
	}
	return server
}

// NewHandler serves server over the streamable HTTP transport.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
}

func binarySearch(_ context.Context, _ *mcp.CallToolRequest, in BinarySearchInput) (*mcp.CallToolResult, BinarySearchOutput, error) {
	if err := search.ValidateSequence(in.Array); err != nil {
		return nil, BinarySearchOutput{}, err
	}

	res := search.Search(in.Array, in.Target)
	out := BinarySearchOutput{
		Found: res.Found,
		Index: res.Index,
		Steps: make([]StepOutput, len(res.Steps)),
	}
	for i, s := range res.Steps {
		out.Steps[i] = StepOutput{
			Low:        s.Low,
			High:       s.High,
			Mid:        s.Mid,
			MidValue:   s.MidValue,
			Comparison: s.Comparison.Label(),
		}
	}
	return nil, out, nil
}

func chatTool(answers AnswerGenerator) mcp.ToolHandlerFor[ChatInput, ChatOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ChatInput) (*mcp.CallToolResult, ChatOutput, error) {
		answer, err := answers.Generate(ctx, in.Message)
		if err != nil {
			return nil, ChatOutput{}, err
		}
		return nil, ChatOutput{Answer: answer}, nil
	}
}
