// Package letters drafts the formal accreditation request letter through the
// Gemini API. Generation never fails from the caller's point of view: service
// errors are folded into a fixed localized apology string.
package letters

import (
	"context"
	"fmt"

	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultTemperature = 0.7

// generator is the slice of the genai SDK the client needs, narrowed so tests
// can stub the service.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models generator
	model  string
	log    *zap.Logger
}

// New connects to the Gemini API. The returned client is usable even when the
// connection fails: Generate then serves apology text only.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Client, error) {
	c := &Client{model: model, log: log}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return c, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

// Generate returns the drafted letter, or the localized apology when the
// service call fails or returns no content. It never returns an error.
func (c *Client) Generate(ctx context.Context, record models.AgencyRecord, lang i18n.Language) string {
	if c.models == nil {
		return Apology(lang)
	}

	resp, err := c.models.GenerateContent(ctx, c.model,
		genai.Text(buildPrompt(record, lang)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(defaultTemperature)),
		},
	)
	if err != nil {
		c.log.Warn("letter generation failed", zap.Error(err))
		return Apology(lang)
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return emptyCompletionText(lang)
}

func buildPrompt(record models.AgencyRecord, lang i18n.Language) string {
	var languagePrompt string
	switch lang {
	case i18n.English:
		languagePrompt = "Write the letter in English."
	case i18n.Hindi:
		languagePrompt = "Write the letter in Hindi (Formal)."
	default:
		languagePrompt = "Write the letter in Arabic (Formal)."
	}

	return fmt.Sprintf(`Task: Write a highly formal and formatted agency registration request letter for a live streaming app.
%s

Use the following details:
- Agency Name: %s
- Country: %s
- Agent/Owner ID: %s
- WhatsApp Number: %s
- Admin Name: %s
- Admin ID: %s

The letter should be addressed to the App Management. It should sound professional, committed, and respectful of the platform's rules.
Do NOT include any conversational intro/outro (like "Here is the letter"). Start directly with the letter header/salutation.`,
		languagePrompt,
		record.AgencyName,
		record.Country,
		record.AgentID,
		record.Whatsapp,
		record.AdminName,
		record.AdminID,
	)
}

// Apology is the fixed per-language text substituted for a failed generation.
func Apology(lang i18n.Language) string {
	switch lang {
	case i18n.English:
		return "Sorry, we could not generate the letter automatically at this time. Please try again later."
	case i18n.Hindi:
		return "क्षमा करें, हम इस समय पत्र स्वतः तैयार नहीं कर सके। कृपया बाद में पुनः प्रयास करें।"
	default:
		return "عذراً، لم نتمكن من صياغة الخطاب تلقائياً في الوقت الحالي. يرجى المحاولة لاحقاً."
	}
}

func emptyCompletionText(lang i18n.Language) string {
	switch lang {
	case i18n.English:
		return "Error generating letter."
	case i18n.Hindi:
		return "पत्र बनाते समय त्रुटि हुई।"
	default:
		return "حدث خطأ أثناء إنشاء الخطاب."
	}
}
