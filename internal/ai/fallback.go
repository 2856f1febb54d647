package ai

// GetFallbackAnswer is used when no key is available. No I/O, never fails.
func (c *GeminiClient) GetFallbackAnswer(prompt string) Answer {
	return FallbackAnswer(prompt)
}

func FallbackAnswer(prompt string) Answer {
	return Answer{
		Content:    "🛈 Mock answer for “" + prompt + "” (no Gemini key found).",
		Confidence: FallbackConfidence,
	}
}
