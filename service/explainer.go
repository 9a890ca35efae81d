package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"rental-calculator/domain"
)

const (
	explainerMaxTokens = 300
	explainerMaxTries  = 3
	explainerTimeout   = 20 * time.Second

	explainerSystemPrompt = "You are an experienced real-estate investment advisor. You explain rental property metrics (cap rate, cash-on-cash return, cash flow, NOI) clearly and realistically, using the exact numbers you are given and never inventing new ones."
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Explainer writes a short narrative summary of an analysis. Without an API
// key it always uses the built-in template.
type Explainer struct {
	chat  chatCompleter
	model string
	log   *zap.Logger
}

func NewExplainer(apiKey, model, baseURL string, log *zap.Logger) *Explainer {
	e := &Explainer{model: model, log: log}
	if apiKey == "" {
		return e
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	e.chat = openai.NewClientWithConfig(cfg)
	return e
}

func (e *Explainer) Enabled() bool {
	return e.chat != nil
}

func (e *Explainer) Summarize(
	ctx context.Context,
	input domain.RentalInput,
	result domain.RentalResult,
	analysis []domain.MetricAnalysis,
) string {
	if !e.Enabled() {
		return fallbackSummary(result, analysis)
	}

	summary, err := e.callLLM(ctx, buildPrompt(input, result, analysis))
	if err != nil {
		e.log.Warn("explainer unavailable, using fallback summary", zap.Error(err))
		return fallbackSummary(result, analysis)
	}
	return summary
}

func (e *Explainer) callLLM(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, explainerTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: explainerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: explainerMaxTokens,
	}

	operation := func() (string, error) {
		resp, err := e.chat.CreateChatCompletion(ctx, req)
		if err != nil {
			var apiErr *openai.APIError
			if errors.As(err, &apiErr) && apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 &&
				apiErr.HTTPStatusCode != 429 {
				return "", backoff.Permanent(err)
			}
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", backoff.Permanent(errors.New("no response from model"))
		}
		content := strings.TrimSpace(resp.Choices[0].Message.Content)
		if content == "" {
			return "", backoff.Permanent(errors.New("empty response from model"))
		}
		return content, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(explainerMaxTries),
	)
}

func buildPrompt(input domain.RentalInput, result domain.RentalResult, analysis []domain.MetricAnalysis) string {
	var ratings strings.Builder
	for _, a := range analysis {
		fmt.Fprintf(&ratings, "- %s: %.2f (%s)\n", a.Metric, a.Value, a.Rating)
	}

	return fmt.Sprintf(`Summarize this rental property investment for the buyer.

PROPERTY AND FINANCING:
- Purchase price: $%.2f with %.1f%% down ($%.2f)
- Loan: $%.2f at %.2f%% for %d years, monthly payment $%.2f
- Monthly rent: $%.2f, vacancy %.1f%%, management fee %.1f%%
- Expected appreciation: %.2f%% per year

RESULTS:
- Net operating income: $%.2f per year
- Net cash flow: $%.2f per month ($%.2f per year)
- Total cash invested: $%.2f
- Total return including appreciation: %.2f%%

RATINGS:
%s
Write 3-4 sentences. Explain whether the property pays for itself, what drives the result, and which assumption would most change the outcome.`,
		input.PurchasePrice, input.DownPaymentPct, result.DownPaymentAmount,
		result.LoanAmount, input.InterestRatePct, input.LoanTermYears, result.MonthlyMortgage,
		input.MonthlyRent, input.VacancyPct, input.ManagementFeePct,
		input.AppreciationPct,
		result.NOI,
		result.NetMonthlyCashFlow, result.NetAnnualCashFlow,
		result.TotalCashInvested,
		result.TotalReturnPct,
		ratings.String())
}

func fallbackSummary(result domain.RentalResult, analysis []domain.MetricAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The property produces $%.2f of net operating income per year and $%.2f of monthly cash flow after the $%.2f mortgage payment. ",
		result.NOI, result.NetMonthlyCashFlow, result.MonthlyMortgage)
	fmt.Fprintf(&b, "Including appreciation, the total annual return is %.2f%% on $%.2f invested.",
		result.TotalReturnPct, result.TotalCashInvested)
	for _, a := range analysis {
		fmt.Fprintf(&b, " %s (%s): %s", a.Metric, a.Rating, a.Description)
	}
	return b.String()
}
