package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Austinjohnson7039/saffar/planner"
)

// AIClient wraps the HuggingFace inference API used for trip summaries.
type AIClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

var aiClient *AIClient

func InitAI() {
	model := os.Getenv("HF_MODEL")
	if model == "" {
		model = "mistralai/Mistral-7B-Instruct-v0.3"
	}

	aiClient = &AIClient{
		apiKey: os.Getenv("HUGGINGFACE_API_KEY"),
		model:  model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	if aiClient.apiKey != "" {
		log.Println("✅ AI (HuggingFace) initialized with model:", model)
	} else {
		log.Println("⚠️  HUGGINGFACE_API_KEY not set — trip summaries will use fallback text")
	}
}

func GetAIClient() *AIClient {
	return aiClient
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// TripSummary asks the model for a short recommendation over the curated
// catalog. Callers fall back to FallbackSummary on any error.
func (c *AIClient) TripSummary(destination, checkIn, checkOut string, guests int, budget float64, cat planner.Catalog) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("huggingface API key not configured")
	}

	reqBody := hfRequest{
		Inputs: buildPrompt(destination, checkIn, checkOut, guests, budget, cat),
		Parameters: hfParameters{
			MaxNewTokens:   400,
			Temperature:    0.6,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://api-inference.huggingface.co/models/%s", c.model)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == 503 {
		return "", fmt.Errorf("AI model is loading, please retry in a few seconds")
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HuggingFace API error (%d): %s", resp.StatusCode, string(body))
	}

	var hfResp hfResponse
	if err := json.Unmarshal(body, &hfResp); err != nil {
		return "", fmt.Errorf("failed to parse AI response: %v", err)
	}

	if len(hfResp) == 0 || hfResp[0].GeneratedText == "" {
		return "", fmt.Errorf("empty response from AI")
	}

	return hfResp[0].GeneratedText, nil
}

func buildPrompt(destination, checkIn, checkOut string, guests int, budget float64, cat planner.Catalog) string {
	prompt := fmt.Sprintf(`[INST] You are a helpful travel assistant. Analyze these options and give brief, honest recommendations.

Trip: %s | %s to %s | %d guest(s) | Budget: %.0f

Stays (per night):
`, destination, checkIn, checkOut, guests, budget)

	for i, a := range cat.Accommodations {
		if i >= 5 {
			break
		}
		prompt += fmt.Sprintf("  %d. %s (%s) — %.0f/night, rated %.1f\n", i+1, a.Name, a.Type, a.Price, a.Rating)
	}

	prompt += "\nDishes (per person):\n"
	for _, cu := range cat.Cuisines {
		for _, r := range cu.Restaurants {
			prompt += fmt.Sprintf("  - %s at %s (%s) — %.0f\n", r.Dish, r.Name, cu.Type, r.Price)
		}
	}

	prompt += "\nTransport (per trip, booked round-trip):\n"
	for _, m := range cat.Transport {
		for _, o := range m.Options {
			prompt += fmt.Sprintf("  - %s (%s) — %.0f\n", o.Name, m.Type, o.Price)
		}
	}

	prompt += `
In 150 words or fewer, recommend one stay, one dish and one transport option that fit the budget. Explain why briefly. Be direct. [/INST]`

	return prompt
}

// FallbackSummary produces a deterministic recommendation when the AI is
// unconfigured or failing: the best-value stay, the top-rated dish and the
// cheapest transport, with a budget check over the full trip.
func FallbackSummary(destination string, nights, guests int, budget float64, cat planner.Catalog) string {
	if len(cat.Accommodations) == 0 || len(cat.Cuisines) == 0 || len(cat.Transport) == 0 {
		return "Unable to provide recommendations for " + destination + " at this time."
	}

	stay := cat.Accommodations[0]
	for _, a := range cat.Accommodations {
		if a.Price < stay.Price {
			stay = a
		}
	}

	dishCuisine := cat.Cuisines[0].Type
	dish := cat.Cuisines[0].Restaurants[0]
	for _, cu := range cat.Cuisines {
		for _, r := range cu.Restaurants {
			if r.Rating > dish.Rating {
				dish = r
				dishCuisine = cu.Type
			}
		}
	}

	rideType := cat.Transport[0].Type
	ride := cat.Transport[0].Options[0]
	for _, m := range cat.Transport {
		for _, o := range m.Options {
			if o.Price < ride.Price {
				ride = o
				rideType = m.Type
			}
		}
	}

	total := stay.Price*float64(nights) + dish.Price*float64(guests) + ride.Price*2
	budgetNote := ""
	if budget > 0 {
		if total <= budget {
			budgetNote = fmt.Sprintf(" This combination fits your %.0f budget.", budget)
		} else {
			budgetNote = fmt.Sprintf(" Note: this exceeds your %.0f budget by %.0f.", budget, total-budget)
		}
	}

	return fmt.Sprintf(
		"Best value picks for %s: stay at %s (%.0f/night, rated %.1f), try %s at %s (%s, %.0f/person), "+
			"and get around with %s (%s, %.0f per trip). Estimated total for %d night(s) and %d guest(s): %.0f.%s",
		destination, stay.Name, stay.Price, stay.Rating,
		dish.Dish, dish.Name, dishCuisine, dish.Price,
		ride.Name, rideType, ride.Price,
		nights, guests, total, budgetNote,
	)
}
