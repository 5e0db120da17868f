package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptKey identifies one overridable template.
type PromptKey string

const (
	// KeySMSSystem is the SMS system-instruction template.
	KeySMSSystem PromptKey = "SMSSystem"
	// KeySMSUser is the SMS user-instructions template.
	KeySMSUser PromptKey = "SMSUser"
	// KeyEmailSystem is the email system-instruction template.
	KeyEmailSystem PromptKey = "EmailSystem"
	// KeyEmailUser is the email user-instructions template.
	KeyEmailUser PromptKey = "EmailUser"
	// KeyEnhanceSystem is the prompt-enhancement system template.
	KeyEnhanceSystem PromptKey = "EnhanceSystem"
	// KeyEnhanceUser is the prompt-enhancement user template.
	KeyEnhanceUser PromptKey = "EnhanceUser"
)

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[PromptKey]promptConfig{
	KeySMSSystem:     {defaultContent: SMSSystemInstruction, filename: "sms_system_prompt.txt"},
	KeySMSUser:       {defaultContent: SMSUserInstructions, filename: "sms_user_prompt.txt"},
	KeyEmailSystem:   {defaultContent: EmailSystemInstruction, filename: "email_system_prompt.txt"},
	KeyEmailUser:     {defaultContent: EmailUserInstructions, filename: "email_user_prompt.txt"},
	KeyEnhanceSystem: {defaultContent: EnhanceSystemInstruction, filename: "enhance_system_prompt.txt"},
	KeyEnhanceUser:   {defaultContent: EnhanceUserInstructions, filename: "enhance_user_prompt.txt"},
}

// GetPrompt returns the template text for key, preferring a user-provided
// file in templatesDir over the built-in default. An empty templatesDir
// always yields the default.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPath := filepath.Join(templatesDir, config.filename)
	if _, err := os.Stat(customPath); err == nil {
		content, readErr := os.ReadFile(customPath)
		if readErr != nil {
			return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPath, readErr)
		}
		return string(content), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPath, err)
	}

	return config.defaultContent, nil
}
