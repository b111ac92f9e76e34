package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and API key formats
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fieldErrors(fieldErrs)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.LLM.Backend {
	case "openai":
		return ValidateAPIKey(c.LLM.OpenAIAPIKey, "OpenAI")
	case "gemini":
		return ValidateAPIKey(c.LLM.GeminiAPIKey, "Gemini")
	}
	return nil
}

// ValidateForServe additionally requires the Slack credentials
func (c *Config) ValidateForServe() error {
	var missing []string
	if c.Slack.BotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.Slack.SigningSecret == "" {
		missing = append(missing, "SLACK_SIGNING_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("serve requires %s", strings.Join(missing, " and "))
	}
	if !strings.HasPrefix(c.Slack.BotToken, "xoxb-") {
		return fmt.Errorf("invalid SLACK_BOT_TOKEN format: must start with 'xoxb-'")
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	}
	return nil
}

func fieldErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		field := fieldError.Namespace()
		switch fieldError.Tag() {
		case "required", "required_if":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param()))
		case "url":
			messages = append(messages, field+" must be a valid URL")
		case "min", "max":
			messages = append(messages, fmt.Sprintf("%s must be %s %s", field, fieldError.Tag(), fieldError.Param()))
		case "gtfield":
			messages = append(messages, fmt.Sprintf("%s must be greater than %s", field, fieldError.Param()))
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
