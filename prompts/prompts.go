// Package prompts builds the system/user prompt pairs sent to the completion
// endpoint. Templates use {{name}} placeholders filled by literal substitution;
// optional guideline clauses are assembled per mode from the campaign settings.
package prompts

const (
	// SMSSystemInstruction defines the copywriter persona for SMS generation.
	SMSSystemInstruction = "You are a highly creative and effective marketing copywriter specializing in SMS for {{project}}. Your goal is to generate unique, engaging, and high-converting SMS messages based on the provided context and user request. Avoid repetitive phrasing and focus on clarity, strong calls to action, and brand voice."

	// SMSUserInstructions is the user-turn template for SMS generation. The
	// character limits stated here mirror the validator exactly; the model is
	// told about them up front so fewer candidates bounce.
	SMSUserInstructions = `Please generate {{num_results}} unique and effective SMS message variation(s) based on the following request and guidelines. Be creative and avoid repeating previous examples or common phrases.

User Request: "{{user_prompt}}"

Guidelines:
{{guidelines}}
- Ensure a clear Call To Action (CTA) within the message text itself.
- Generate distinct variations, exploring different angles or hooks for each.
- ABSOLUTELY CRITICAL CHARACTER LIMITS FOR THE MESSAGE TEXT (BEFORE the final link which will be added later) - NON-NEGOTIABLE:
  - STANDARD MESSAGES (NO EMOJI): The message text MUST NOT EXCEED 128 characters. NO EXCEPTIONS.
  - MESSAGES WITH EMOJI: If emojis are requested (use_emojis=true), include exactly ONE emoji and the message text MUST NOT EXCEED 40 characters. NO EXCEPTIONS.
  - VERIFY LENGTH: Double-check the character count of your generated message text BEFORE responding. Exceeding these limits is a failure.
- CRITICAL EMOJI USAGE: If emojis are requested (use_emojis=true), use exactly ONE relevant emoji. If emojis are NOT requested (use_emojis=false), DO NOT use any emojis.
- DO NOT INCLUDE THE FINAL LINK: You only need to generate the message text. The required link ('>>> https://vbs.com/xxxxx' or a custom one) will be appended automatically later.
- CRITICAL RESPONSE FORMAT: Your entire response MUST contain ONLY the generated SMS message text. If generating multiple messages, separate each distinct message with exactly three hyphens ('---') on its own line. Do not include any introductory text, explanations, numbering, labels, or any other text besides the messages and the separator.`

	// EmailSystemInstruction defines the copywriter persona for email generation.
	EmailSystemInstruction = "You are an expert email marketing copywriter for {{project}}. Your task is to generate compelling email subject lines and/or body text based on the provided context, user request, and potentially successful past campaign data (if provided). Adhere strictly to the requested output format (JSON with 'subject' and 'message' keys)."

	// EmailUserInstructions is the user-turn template for email generation.
	EmailUserInstructions = `Please generate {{num_results}} email variation(s) based on the following request and guidelines. Respond ONLY with a valid JSON object containing the keys "subject" and "message".

User Request Context:
{{user_request_context}}

Generation Task:
{{generation_task}}

Guidelines:
{{guidelines}}
- Leverage insights from the provided campaign data (subject strategies, successful emojis, content patterns).
- Ensure the tone and style align with the brand voice.
- CRITICAL: Your entire response MUST be ONLY the valid JSON object or array of objects as described. Do not include any text before or after the JSON. Example for one result: {"subject": "Generated Subject", "message": "Generated message body."}. Example for multiple: [{"subject": "Sub1", "message": "Msg1"}, {"subject": "Sub2", "message": "Msg2"}]`

	// EnhanceSystemInstruction guards the prompt-rewriting flow against
	// inventing offers or legal text the user never asked for.
	EnhanceSystemInstruction = "You are an AI assistant that refines user prompts for large-language-model (LLM) generation of {{mode}} marketing copy. Preserve the user's intent and constraints, but NEVER introduce new or assumed specifics (offers, prices, URLs, promo codes, company names, legal text) that are not in the original prompt."

	// EnhanceUserInstructions asks for the rewritten prompt and nothing else.
	EnhanceUserInstructions = `Rewrite the following prompt for clarity, brevity, and best-practice structure. Output ONLY the final, enhanced prompt - no explanations or extra text.

Original Prompt:
"{{promptText}}"`
)

// modeTemplate bundles the prompt text for one generation mode. Empty clause
// fields mean the mode defines no such clause (and no default for it).
type modeTemplate struct {
	systemInstruction string
	userInstructions  string

	topic         string
	date          string
	tone          string
	toneDefault   string
	length        string
	lengthDefault string
	href          string
	emojiTrue     string
	emojiFalse    string
}

var smsTemplate = modeTemplate{
	systemInstruction: SMSSystemInstruction,
	userInstructions:  SMSUserInstructions,
	topic:             "- Focus on the topic: {{topic}}\n",
	date:              "- Relevant for the date: {{date}}\n",
	tone:              "- Adopt a {{tone}} tone.\n",
	toneDefault:       "- Adopt an engaging and persuasive tone.\n",
	length:            "- Strictly adhere to a maximum message text length of {{length}} characters. If emojis are requested, the limit is 40 characters.\n",
	lengthDefault:     "- Strictly adhere to a maximum message text length of 128 characters. If emojis are requested, the limit is 40 characters.\n",
	emojiTrue:         "- Include exactly ONE relevant emoji. Remember the 40-character message text limit.\n",
	emojiFalse:        "- Do not include any emojis. Remember the 128-character message text limit.\n",
}

var emailTemplate = modeTemplate{
	systemInstruction: EmailSystemInstruction,
	userInstructions:  EmailUserInstructions,
	topic:             "- Focus on the topic: {{topic}}\n",
	date:              "- Relevant for the date: {{date}}\n",
	tone:              "- Use a {{tone}} tone.\n",
	length:            "- Aim for approximately {{length}} characters for the message body.\n",
	href:              "- Include this link where appropriate: {{href}}\n",
	emojiTrue:         "- Include relevant emojis where appropriate, especially in the subject line.\n",
	emojiFalse:        "- Do not include emojis.\n",
}
