package transform

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/sudoguy/kibitzr/internal/infrastructure/monitoring"
	"github.com/sudoguy/kibitzr/internal/logging"
	"github.com/sudoguy/kibitzr/internal/shared/id"
	xf "github.com/sudoguy/kibitzr/internal/transform"
	"github.com/sudoguy/kibitzr/internal/transform/engine"
	"github.com/sudoguy/kibitzr/internal/types"
)

// ServiceID prefixes every tool of the provider
const ServiceID = "transform"

// tools maps tool IDs to engine names
var tools = map[string]string{
	ServiceID + ".template":   engine.GoTemplateName,
	ServiceID + ".handlebars": engine.HandlebarsName,
}

// Provider exposes template transforms as pipeline tools
type Provider struct {
	transformers map[string]*xf.Transformer
	logger       *logging.Logger
}

// NewProvider creates a provider with one transformer per engine
func NewProvider(logger *logging.Logger, metrics *monitoring.Metrics, viewOpts ...xf.ViewOption) (*Provider, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	transformers := make(map[string]*xf.Transformer, len(tools))
	for toolID, name := range tools {
		eng, err := engine.New(name)
		if err != nil {
			return nil, err
		}
		transformers[toolID] = xf.New(eng,
			xf.WithLogger(logger),
			xf.WithMetrics(metrics),
			xf.WithViewOptions(viewOpts...),
		)
	}

	return &Provider{transformers: transformers, logger: logger}, nil
}

// ToolFor returns the tool ID rendering with the named engine
func ToolFor(engineName string) (string, bool) {
	for toolID, name := range tools {
		if name == engineName {
			return toolID, true
		}
	}
	return "", false
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	params := []types.Parameter{
		{Name: "code", Type: "string", Description: "Template source", Required: true},
		{Name: "content", Type: "string", Description: "Fetched content", Required: false},
		{Name: "conf", Type: "object", Description: "Watch configuration passed to the template", Required: false},
	}

	return types.Service{
		ID:          ServiceID,
		Name:        "Template Transform Service",
		Description: "Render templates against lazy JSON, CSS and XPath views of fetched content",
		Category:    types.CategoryTransform,
		Capabilities: []string{
			"json_lookup",
			"css_selectors",
			"xpath_queries",
			"text_extraction",
			"html_sanitization",
			"charset_detection",
		},
		Tools: []types.Tool{
			{
				ID:          ServiceID + ".template",
				Name:        "Go Template",
				Description: "Render a text/template against the content",
				Parameters:  params,
				Returns:     "object",
			},
			{
				ID:          ServiceID + ".handlebars",
				Name:        "Handlebars Template",
				Description: "Render a Handlebars template against the content; strings are not HTML-escaped",
				Parameters:  params,
				Returns:     "object",
			},
		},
	}
}

// Execute renders the template. A template error is a failed result with a
// nil error; malformed content or a bad selector is returned as the error.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	t, ok := p.transformers[toolID]
	if !ok {
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}

	code, ok := GetString(params, "code")
	if !ok {
		return Failure("code parameter required")
	}
	content, _ := GetString(params, "content")

	requestID := requestIDFrom(appCtx)
	log := p.logger.With(zap.String("request_id", requestID), zap.String("tool", toolID))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := t.Transform(code, content, params["conf"])
	if err != nil {
		log.Error("transform fault", zap.Error(err))
		msg := err.Error()
		return &types.Result{Success: false, Error: &msg}, err
	}

	value, ok := result.Unpack()
	if !ok {
		return Failure("template transform failed")
	}

	return Success(map[string]interface{}{
		"value":        value,
		"content_type": mimetype.Detect([]byte(value)).String(),
		"engine":       t.Engine(),
		"request_id":   requestID,
	})
}

func requestIDFrom(appCtx *types.Context) string {
	if appCtx != nil && appCtx.RequestID != nil {
		return *appCtx.RequestID
	}
	return id.NewRequestID().String()
}
