package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Tool represents an MCP tool interface
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for the agent
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// ToolRegistry holds all available tools
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools sorted by name
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name() < tools[j].Name()
	})
	return tools
}

// GetToolDefinitions returns tool definitions in function-calling format
func (r *ToolRegistry) GetToolDefinitions() []map[string]interface{} {
	tools := r.List()
	definitions := make([]map[string]interface{}, 0, len(tools))
	for _, tool := range tools {
		def := map[string]interface{}{
			"name":        tool.Name(),
			"description": tool.Description(),
			"parameters":  tool.InputSchema(),
		}
		definitions = append(definitions, def)
	}
	return definitions
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewSuccessResult creates a successful tool result
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	result := ToolResult{Success: true}
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	result.Data = dataBytes
	return json.Marshal(result)
}

// NewErrorResult creates an error tool result
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	result := ToolResult{
		Success: false,
		Error:   errMsg,
	}
	return json.Marshal(result)
}

// ValidateInput checks a tool input against the tool's JSON schema
func ValidateInput(schema map[string]interface{}, input json.RawMessage) error {
	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewBytesLoader(input))
	if err != nil {
		return fmt.Errorf("failed to validate input: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		messages = append(messages, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("input does not match schema: %s", strings.Join(messages, "; "))
}

// looseInteger accepts what FlexibleInt accepts.
var looseInteger = map[string]interface{}{
	"type": []string{"integer", "number", "string", "null"},
}

func refSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       []string{"object", "null"},
		"properties": map[string]interface{}{"id": looseInteger},
	}
}

func idListSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":  []string{"array", "null"},
		"items": looseInteger,
	}
}

// jobSchema describes one job payload
func jobSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": []string{"object", "null"},
		"properties": map[string]interface{}{
			"id":             map[string]interface{}{"type": []string{"integer", "string"}},
			"jobType":        refSchema(),
			"position":       refSchema(),
			"industry":       refSchema(),
			"contractType":   refSchema(),
			"district":       refSchema(),
			"city":           refSchema(),
			"yearExperience": looseInteger,
			"minSalary":      looseInteger,
			"maxSalary":      looseInteger,
			"skill_ids":      idListSchema(),
		},
	}
}

// employeeSchema describes one employee payload
func employeeSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"educationLevelIds": idListSchema(),
			"careerGoal": map[string]interface{}{
				"type": []string{"object", "null"},
				"properties": map[string]interface{}{
					"industryId": looseInteger,
					"jobTypeId":  looseInteger,
					"positionId": looseInteger,
					"minSalary":  looseInteger,
					"maxSalary":  looseInteger,
				},
			},
			"industry":       refSchema(),
			"jobType":        refSchema(),
			"position":       refSchema(),
			"contractType":   refSchema(),
			"district":       refSchema(),
			"city":           refSchema(),
			"yearExperience": looseInteger,
			"minSalary":      looseInteger,
			"maxSalary":      looseInteger,
			"skillIds":       idListSchema(),
		},
	}
}

func kSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     0,
		"description": "Number of jobs to return (0 uses the server default)",
	}
}
