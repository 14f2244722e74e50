package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"agrostock-backend/internal/model"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// Analyst produces a narrative business summary from a snapshot of current
// stock and sales data. Implementations may fail; callers are expected to
// degrade to a fixed fallback message.
type Analyst interface {
	Summarize(ctx context.Context, products []model.Product, sales []model.Sale) (string, error)
}

type OpenAIAnalyst struct {
	client *openai.Client
}

func NewOpenAIAnalyst(apiKey string) *OpenAIAnalyst {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIAnalyst{client: &client}
}

func (a *OpenAIAnalyst) Summarize(ctx context.Context, products []model.Product, sales []model.Sale) (string, error) {
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("failed to marshal products: %w", err)
	}
	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return "", fmt.Errorf("failed to marshal sales: %w", err)
	}

	prompt := fmt.Sprintf(`You are an expert agricultural business analyst for Olatunbosun Agro Stock Manager.
Based on the following data, provide a concise (2-3 paragraph) executive summary of business health,
identifying any risks (like low stock) and performance highlights.

Stock Inventory: %s
Recent Sales: %s

Focus on:
1. Critical stock levels.
2. Revenue trends.
3. Strategic recommendations for the store manager.`, productsJSON, salesJSON)

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}

	return content, nil
}
