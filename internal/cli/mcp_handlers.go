package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/rheard/netauto"
	"github.com/rheard/netauto/internal/native"
)

// resultToText serializes a result struct to YAML for an MCP response.
func resultToText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func stringParam(params map[string]any, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func boolParam(params map[string]any, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// floatParam accepts any JSON numeric representation.
func floatParam(params map[string]any, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

func intParam(params map[string]any, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

// stringsParam converts a JSON array parameter to a string slice.
func stringsParam(params map[string]any, key string) []string {
	raw, ok := params[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mcpSearchOptions builds FindOptions from tool call parameters.
func mcpSearchOptions(params map[string]any) (netauto.FindOptions, error) {
	scope, err := native.ParseScope(stringParam(params, "scope", ""))
	if err != nil {
		return netauto.FindOptions{}, err
	}
	return netauto.FindOptions{
		Scope:       scope,
		Timeout:     time.Duration(floatParam(params, "timeout", 0) * float64(time.Second)),
		MinSearches: intParam(params, "min_searches", 1),
	}, nil
}

// mcpProps parses the required props array parameter.
func mcpProps(params map[string]any) (netauto.Props, error) {
	args := stringsParam(params, "props")
	if len(args) == 0 {
		return nil, fmt.Errorf("props is required: a non-empty array of key=value strings")
	}
	return parseProps(args)
}

// mcpTarget resolves the element a pattern tool operates on.
func mcpTarget(params map[string]any) (*netauto.Element, error) {
	props, err := mcpProps(params)
	if err != nil {
		return nil, err
	}
	opts, err := mcpSearchOptions(params)
	if err != nil {
		return nil, err
	}
	root, err := netauto.Desktop()
	if err != nil {
		return nil, err
	}
	return root.FindElement(props, opts)
}

func (s *mcpServer) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	props, err := mcpProps(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts, err := mcpSearchOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	root, err := netauto.Desktop()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := findResult{OK: true, Action: "find"}
	if boolParam(params, "all", false) {
		elements, err := root.FindElements(props, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		for _, el := range elements {
			result.Elements = append(result.Elements, elementInfo(el))
		}
	} else {
		el, err := root.FindElement(props, opts)
		var notFound *netauto.ElementNotFoundError
		if errors.As(err, &notFound) {
			result.OK = false
			result.Total = 0
			return mcp.NewToolResultError(resultToText(result)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result.Elements = append(result.Elements, elementInfo(el))
	}
	result.Total = len(result.Elements)
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleInvoke(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	el, err := mcpTarget(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := el.Invoke(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(actionResult{OK: true, Action: "invoke", Element: elementInfo(el)})), nil
}

func (s *mcpServer) handleSetValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	_, hasValue := params["value"]
	_, hasRange := params["range"]
	if hasValue == hasRange {
		return mcp.NewToolResultError("specify exactly one of value or range"), nil
	}

	el, err := mcpTarget(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if hasRange {
		err = el.SetRangeValue(floatParam(params, "range", 0))
	} else {
		err = el.SetValue(stringParam(params, "value", ""))
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(actionResult{OK: true, Action: "set_value", Element: elementInfo(el)})), nil
}

func (s *mcpServer) handleWait(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	props, err := mcpProps(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts, err := mcpSearchOptions(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts.Timeout = time.Duration(floatParam(params, "timeout", 30) * float64(time.Second))
	root, err := netauto.Desktop()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	start := time.Now()

	if boolParam(params, "gone", false) {
		locate := opts
		locate.Timeout = 0
		locate.MinSearches = 1
		el, err := root.FindElement(props, locate)
		var notFound *netauto.ElementNotFoundError
		if errors.As(err, &notFound) {
			return mcp.NewToolResultText(resultToText(waitResult{OK: true, Action: "wait", Gone: true, Elapsed: elapsed(start)})), nil
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if el.WaitUnavailable(netauto.WaitOptions{
			Timeout:       opts.Timeout,
			KeepOffscreen: boolParam(params, "keep_offscreen", false),
		}) {
			return mcp.NewToolResultText(resultToText(waitResult{OK: true, Action: "wait", Gone: true, Elapsed: elapsed(start)})), nil
		}
		return mcp.NewToolResultError(resultToText(waitResult{Action: "wait", Gone: true, Elapsed: elapsed(start), TimedOut: true})), nil
	}

	el, err := root.FindElement(props, opts)
	var notFound *netauto.ElementNotFoundError
	if errors.As(err, &notFound) {
		return mcp.NewToolResultError(resultToText(waitResult{Action: "wait", Elapsed: elapsed(start), TimedOut: true})), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	info := elementInfo(el)
	return mcp.NewToolResultText(resultToText(waitResult{OK: true, Action: "wait", Elapsed: elapsed(start), Element: &info})), nil
}

func (s *mcpServer) handlePatterns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := patternsReport(stringParam(request.GetArguments(), "pattern", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}
