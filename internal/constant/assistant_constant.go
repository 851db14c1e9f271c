package constant

const (
	// Personality keys stored in tenant AI settings.
	PersonalityFriendly     = "friendly"
	PersonalityProfessional = "professional"
	PersonalityCasual       = "casual"
	PersonalityEnthusiastic = "enthusiastic"

	// Knowledge focus keys stored in tenant AI settings.
	FocusBalanced = "balanced"
	FocusBusiness = "business"
	FocusIndustry = "industry"
	FocusSales    = "sales"
)

// PersonalityInstructions maps a personality key to the tone line
// inserted into the assistant prompt.
var PersonalityInstructions = map[string]string{
	PersonalityFriendly:     "friendly and helpful",
	PersonalityProfessional: "professional and formal",
	PersonalityCasual:       "casual and conversational",
	PersonalityEnthusiastic: "enthusiastic and energetic",
}

// FocusInstructions maps a knowledge focus key to its prompt line.
var FocusInstructions = map[string]string{
	FocusBalanced: "Provide a balance of business-specific and general information.",
	FocusBusiness: "Focus primarily on the specific services and features of the business.",
	FocusIndustry: "Share educational information about the industry when relevant.",
	FocusSales:    "Focus on guiding users toward booking appointments or making purchases.",
}

const AssistantPromptTemplateV1 = `You are an AI assistant for %s, a %s.
Respond in a %s manner. %s
%s

BUSINESS INFORMATION:
%s

%s
If the user asks about booking an appointment, explain the available services and ask for their preferred date and time.
If the user asks about business hours, services, or location, provide accurate information from the business context.
If you don't know the answer to a question, politely say so and offer to connect them with a human representative.

Do not make up information that is not in the provided context.

User message: %s`

const AssistantCustomPromptTemplateV1 = `%s

BUSINESS INFORMATION:
%s

%s
User message: %s`
