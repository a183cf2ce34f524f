package services

import "errors"

// Error kinds surfaced by the LLM gateway and the response parsers.
// Handlers map these to HTTP statuses with errors.Is; the underlying
// detail (status codes, raw reply text) is logged server-side only.
var (
	// ErrMissingCredential means the API key was never configured.
	ErrMissingCredential = errors.New("HF_API_KEY is missing")

	// ErrTransport covers non-success HTTP statuses from the provider.
	ErrTransport = errors.New("AI request failed")

	// ErrMalformedEnvelope means the response body was not valid JSON.
	ErrMalformedEnvelope = errors.New("invalid JSON response from AI")

	// ErrUnexpectedShape means the envelope parsed but lacked
	// choices[0].message.content.
	ErrUnexpectedShape = errors.New("invalid AI response structure")

	// ErrFormat means the model's reply could not be coerced into the
	// JSON shape an operation expects.
	ErrFormat = errors.New("AI response format invalid")
)
