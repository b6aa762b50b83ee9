package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pedrogillet1/koda-api/internal/chat/llm"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/customHttpClient"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
	prompt    string
}

var logger *logger_i.Logger
var geminiClient *llmClient
var once sync.Once

func GetGeminiClient(ctx context.Context, apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_gemini")
		newGeminiClient(ctx, apikey, modelName)
	})

	if geminiClient == nil {
		return nil
	}
	return &llmClient{client: geminiClient.client, modelName: geminiClient.modelName, prompt: geminiClient.prompt}
}

func newGeminiClient(ctx context.Context, apikey string, modelName string) {

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey, HTTPClient: customHttpClient.Client()})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
	}
	if c != nil {
		geminiClient = &llmClient{client: c, modelName: modelName, prompt: config.ModelContext}
		logger.Debug("Gemini ", modelName, " client created")
		logger.Info("Gemini client created")
		go closeClient(ctx, geminiClient)
	}

}

func (c *llmClient) Generate(ctx context.Context, userQuery string, matches []string, messageHistory []string) (string, error) {
	logger.With("traceId", ctx.Value("traceId"))

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(buildUserPrompt(userQuery, matches, messageHistory)),
		c.contentConfig(),
	)
	if err != nil {
		logger.Error("Gemini generation failed", "error", err)
		return "", err
	}
	return result.Text(), nil
}

func (c *llmClient) GenerateStream(ctx context.Context, userQuery string, matches []string, messageHistory []string, emit func(chunk string) error) error {
	logger.With("traceId", ctx.Value("traceId"))

	for result, err := range c.client.Models.GenerateContentStream(
		ctx,
		c.modelName,
		genai.Text(buildUserPrompt(userQuery, matches, messageHistory)),
		c.contentConfig(),
	) {
		if err != nil {
			logger.Error("Gemini stream failed", "error", err)
			return err
		}
		if err := emit(result.Text()); err != nil {
			return err
		}
	}
	return nil
}

func (c *llmClient) contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: c.prompt},
			},
		},
	}
}

func buildUserPrompt(userQuery string, matches []string, messageHistory []string) string {
	var contextText strings.Builder

	if len(messageHistory) > 0 {
		contextText.WriteString("This is Message History :" +
			" Question stands for the user question and the answer stands for the answer you gave, sources are the source for answer \n")
		contextText.WriteString(strings.Join(messageHistory, "\n"))
		contextText.WriteString("\n")
	}
	contextText.WriteString(strings.Join(matches, "\n"))

	return fmt.Sprintf("Context:\n%s\n\nUser Question: %s", contextText.String(), userQuery)
}

func closeClient(ctx context.Context, llm *llmClient) {
	<-ctx.Done()
	logger.Info("Closing Gemini client")
	llm.client = nil
	llm.modelName = ""
	llm.prompt = ""
}
