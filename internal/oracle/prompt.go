package oracle

// Prompt is sent alongside every snapshot.
const Prompt = `You are a Zen master and an expert in traditional bamboo weaving (Zhubian).
The user has created a dynamic weaving pattern using their body movement (motion capture).
The provided image is a snapshot of this digital interaction.

1. Analyze the flow, chaos, or order in the lines.
2. Give this creation a poetic 4-character Chinese idiom title (with English translation).
3. Write a very short Haiku-style poem about the movement seen in the pattern.
4. Provide a "Weaving Philosophy" interpretation connecting the user's movement to life advice.

Return ONLY JSON.`

type schemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

func interpretationSchema() responseSchema {
	return responseSchema{
		Type: "OBJECT",
		Properties: map[string]schemaProperty{
			"title":      {Type: "STRING", Description: "A poetic title, e.g., 'Wind Dancing Bamboo (风舞竹韵)'"},
			"poem":       {Type: "STRING", Description: "A short poem reflecting the visual pattern"},
			"philosophy": {Type: "STRING", Description: "Philosophical interpretation of the pattern"},
		},
		Required: []string{"title", "poem", "philosophy"},
	}
}
