package output

import "context"

// RESTClient interface - Output port
// Plain HTTP access for the calls outside the operation-request model.
// Requests carry Basic authentication; bodies are returned verbatim.
type RESTClient interface {
	// GetText issues a GET and returns the response body.
	GetText(ctx context.Context, url string) (string, error)

	// SendJSON issues a GET, POST, PUT or DELETE with an optional JSON body
	// and returns the response body.
	SendJSON(ctx context.Context, method, url string, data []byte) (string, error)
}
