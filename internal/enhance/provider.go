package enhance

import "net/http"

// ImageAttachment carries the raw bytes of an image to send alongside a
// draft caption. Bytes are base64-encoded on the wire by the provider.
type ImageAttachment struct {
	MimeType string
	Data     []byte
}

// GenerateRequest is the provider-neutral description of one text
// generation call.
type GenerateRequest struct {
	// Prompt is the full instruction text.
	Prompt string

	// Image, when non-nil, is attached inline to the prompt.
	Image *ImageAttachment

	// StructuredJSON asks the model to reply with the enhancement JSON
	// object instead of free text.
	StructuredJSON bool
}

// Provider abstracts a remote generation API: how to address it, how to
// authenticate, and how to translate requests and responses.
type Provider interface {
	// Name returns the provider name for logs.
	Name() string

	// BuildURL constructs the endpoint URL for the given model.
	BuildURL(baseURL, model string) string

	// SetHeaders sets provider-specific headers, including auth.
	SetHeaders(req *http.Request, apiKey string)

	// BuildRequestBody marshals a GenerateRequest into the wire format.
	BuildRequestBody(req GenerateRequest) ([]byte, error)

	// ParseResponse extracts the generated text from a response body.
	ParseResponse(body []byte) (string, error)
}
