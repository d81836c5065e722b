package core

import "errors"

// Sentinel errors for the notification pipeline. Callers classify failures
// with errors.Is and decide locally whether to degrade, skip or surface.
var (
	// ErrMalformedEvent indicates a raw chat event missing fields required
	// for normalization. The event is dropped, no receipt is attempted.
	ErrMalformedEvent = errors.New("malformed event")

	// ErrMetadataLookup indicates a role/channel/reply lookup against the
	// chat session failed.
	ErrMetadataLookup = errors.New("metadata lookup failed")

	// ErrPrinterUnavailable indicates the printer could not be reached.
	ErrPrinterUnavailable = errors.New("printer unavailable")

	// ErrPrinterProtocol indicates the printer connection was established
	// but the job could not be written.
	ErrPrinterProtocol = errors.New("printer protocol error")
)

// IsPrinterError checks if an error is a printer-side dispatch failure.
func IsPrinterError(err error) bool {
	return errors.Is(err, ErrPrinterUnavailable) || errors.Is(err, ErrPrinterProtocol)
}
