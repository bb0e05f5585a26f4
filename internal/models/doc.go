// Package models lists the OpenAI chat models that can be used as
// translation model, so users can pick a value for --model.
package models
