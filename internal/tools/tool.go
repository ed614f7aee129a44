package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	genschema "github.com/invopop/jsonschema"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// Tool is one callable operation on the tool surface. Arguments arrive as
// raw JSON and are schema-validated before the handler runs.
type Tool interface {
	Name() string
	Description() string
	InputSchema() map[string]any
	Call(ctx context.Context, args json.RawMessage) (any, error)
}

// typedTool binds a handler taking a concrete argument struct T to a JSON
// Schema reflected from T. Handlers return the result envelope directly;
// upstream failures live inside the envelope, so Call errors only for
// bad arguments.
type typedTool[T any] struct {
	name        string
	description string
	schema      map[string]any
	compiled    *jsonschema.Schema
	handler     func(ctx context.Context, args T) any
}

// NewTool reflects a JSON Schema from T, compiles it for validation, and
// wraps handler as a Tool. Field descriptions come from jsonschema struct
// tags; fields without omitempty are required.
func NewTool[T any](name, description string, handler func(ctx context.Context, args T) any) (Tool, error) {
	reflector := genschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var zero T
	raw, err := json.Marshal(reflector.Reflect(&zero))
	if err != nil {
		return nil, fmt.Errorf("tool %s: marshal schema: %w", name, err)
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("tool %s: decode schema: %w", name, err)
	}
	delete(schema, "$schema")

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("tool %s: parse schema: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name+".json", doc); err != nil {
		return nil, fmt.Errorf("tool %s: add schema resource: %w", name, err)
	}
	compiled, err := compiler.Compile(name + ".json")
	if err != nil {
		return nil, fmt.Errorf("tool %s: compile schema: %w", name, err)
	}

	return &typedTool[T]{
		name:        name,
		description: description,
		schema:      schema,
		compiled:    compiled,
		handler:     handler,
	}, nil
}

func (t *typedTool[T]) Name() string               { return t.name }
func (t *typedTool[T]) Description() string        { return t.description }
func (t *typedTool[T]) InputSchema() map[string]any { return t.schema }

func (t *typedTool[T]) Call(ctx context.Context, args json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage(`{}`)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(args))
	if err != nil {
		return nil, fmt.Errorf("tool %s: arguments are not valid JSON: %w", t.name, err)
	}
	if err := t.compiled.Validate(inst); err != nil {
		return nil, fmt.Errorf("tool %s: invalid arguments: %w", t.name, err)
	}

	var parsed T
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, fmt.Errorf("tool %s: decode arguments: %w", t.name, err)
	}
	return t.handler(ctx, parsed), nil
}
